package participants

import (
	"net/http"

	"registrations/middleware"
	"registrations/models"
	"registrations/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetParticipants returns the previews visible to the caller
// @Summary List participants
// @Description Organizers see every participant, chefs see the participants and chefs of their university
// @Tags Participants
// @Produce json
// @Success 200 {array} models.ParticipantPreview
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /participants/ [get]
// @Security Bearer
func (h *ParticipantHandler) GetParticipants(c *gin.Context) {
	claims, err := middleware.GetClaimsFromRequest(c)
	if err != nil {
		return
	}

	previews, err := h.svc.ListPreview(c.Request.Context(), claims)
	if err != nil {
		respondWithServiceError(c, claims, err)
		return
	}
	c.JSON(http.StatusOK, previews)
}

// GetParticipant returns the full record of a participant
// @Summary Get a participant
// @Description Full record including attachments, restricted to the caller's scope
// @Tags Participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} models.Participant
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /participants/{id} [get]
// @Security Bearer
func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	claims, err := middleware.GetClaimsFromRequest(c)
	if err != nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id can match no row
		response.Error(c, http.StatusNotFound, ErrNotPermitted)
		return
	}

	participant, err := h.svc.Get(c.Request.Context(), claims, id)
	if err != nil {
		respondWithServiceError(c, claims, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// CreateParticipant provisions an account and returns its one-time password
// @Summary Create a participant
// @Description The generated password is returned once and never stored in clear
// @Tags Participants
// @Accept json
// @Produce json
// @Param participant body models.MinimalParticipant true "Participant to create"
// @Success 201 {object} services.Provisioned
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /participants/ [post]
// @Security Bearer
func (h *ParticipantHandler) CreateParticipant(c *gin.Context) {
	claims, err := middleware.GetClaimsFromRequest(c)
	if err != nil {
		return
	}

	var minimal models.MinimalParticipant
	if err := c.ShouldBindJSON(&minimal); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidPayload+": "+err.Error())
		return
	}

	provisioned, err := h.svc.Create(c.Request.Context(), claims, minimal)
	if err != nil {
		respondWithServiceError(c, claims, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, provisioned)
}

// DeleteParticipant removes a participant inside the caller's scope
// @Summary Delete a participant
// @Tags Participants
// @Param id path string true "Participant ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /participants/{id} [delete]
// @Security Bearer
func (h *ParticipantHandler) DeleteParticipant(c *gin.Context) {
	claims, err := middleware.GetClaimsFromRequest(c)
	if err != nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, ErrNotPermitted)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), claims, id); err != nil {
		respondWithServiceError(c, claims, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUniversityParticipants returns the delegation of one university
// @Summary List a university's participants
// @Tags Participants
// @Produce json
// @Param university path string true "University code"
// @Success 200 {array} models.ParticipantPreview
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /universities/{university}/participants [get]
// @Security Bearer
func (h *ParticipantHandler) GetUniversityParticipants(c *gin.Context) {
	claims, err := middleware.GetClaimsFromRequest(c)
	if err != nil {
		return
	}

	university, err := models.ParseUniversity(c.Param("university"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidUniversity)
		return
	}

	previews, err := h.svc.ListUniversity(c.Request.Context(), claims, university)
	if err != nil {
		respondWithServiceError(c, claims, err)
		return
	}
	c.JSON(http.StatusOK, previews)
}
