package v1

import (
	"net/http"

	"registrations/config"
	"registrations/handlers/auth"
	"registrations/handlers/participants"
	"registrations/middleware"
	"registrations/services"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine, svc *services.ParticipantService) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter("api", config.APIRateLimitConfig())
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1, auth.NewAuthHandler(svc, config.Env.JWTSecret, config.Env.JWTExpiration))
	participants.RegisterRoutes(v1, participants.NewParticipantHandler(svc))

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}

// @Summary Ping
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/ping", ping)
}
