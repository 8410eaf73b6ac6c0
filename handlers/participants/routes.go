package participants

import (
	"registrations/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to participants
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *ParticipantHandler) {
	participants := r.Group("/participants")
	participants.Use(middleware.AuthMiddleware())
	{
		participants.GET("/", h.GetParticipants)
		participants.POST("/", h.CreateParticipant)
		participants.GET("/export", h.ExportParticipantsXLSX)
		participants.POST("/import", h.ImportParticipantsXLSX)
		participants.GET("/:id", h.GetParticipant)
		participants.DELETE("/:id", h.DeleteParticipant)
	}

	universities := r.Group("/universities")
	universities.Use(middleware.AuthMiddleware())
	{
		universities.GET("/:university/participants", h.GetUniversityParticipants)
	}
}
