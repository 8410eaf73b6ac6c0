package participants

import (
	"errors"
	"net/http"

	"registrations/models"
	"registrations/services"
	"registrations/utils/permissions"
	"registrations/utils/response"

	"github.com/gin-gonic/gin"
)

// Error messages constants
const (
	ErrNotPermitted       = "Operation not permitted"
	ErrInvalidPayload     = "Invalid participant data"
	ErrInvalidUniversity  = "Invalid university"
	ErrParticipantExists  = "A participant with this email already exists"
	ErrOperationFailed    = "Failed to process participant request"
	ErrFailedToGetFile    = "Failed to get file"
	ErrFailedToParseXLSX  = "Failed to parse XLSX file"
	ErrNoParticipantsRows = "No valid participant data found in the file"
	ErrFailedToExport     = "Failed to export participants"
)

const exportSheet = "Participants"

// ImportResult lists the accounts created by an import and the rows that were skipped
type ImportResult struct {
	Created []services.Provisioned `json:"created"`
	Errors  map[string]string      `json:"errors,omitempty"`
}

// ParticipantHandler serves the participant endpoints on top of a ParticipantService
type ParticipantHandler struct {
	svc *services.ParticipantService
}

func NewParticipantHandler(svc *services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{svc: svc}
}

// respondWithServiceError maps a service outcome to its HTTP status.
// Forbidden and NotFound share a message so a caller cannot probe for rows outside its scope.
func respondWithServiceError(c *gin.Context, claims permissions.Claims, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		response.Error(c, http.StatusForbidden, ErrNotPermitted)
	case errors.Is(err, services.ErrNotFound):
		response.Error(c, http.StatusNotFound, ErrNotPermitted)
	case errors.Is(err, services.ErrValidation):
		response.Error(c, http.StatusBadRequest, ErrInvalidPayload+": "+err.Error())
	case errors.Is(err, services.ErrConflict):
		response.Error(c, http.StatusConflict, ErrParticipantExists)
	default:
		if claims.Role == models.RoleOrganizer {
			c.JSON(http.StatusInternalServerError, gin.H{"error": ErrOperationFailed, "detail": err.Error()})
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrOperationFailed)
	}
}

// rowMessage is the per-row message of an import failure, internal details are kept for organizers
func rowMessage(claims permissions.Claims, err error) string {
	switch {
	case errors.Is(err, services.ErrForbidden):
		return ErrNotPermitted
	case errors.Is(err, services.ErrValidation):
		return err.Error()
	case errors.Is(err, services.ErrConflict):
		return ErrParticipantExists
	case claims.Role == models.RoleOrganizer:
		return err.Error()
	default:
		return ErrOperationFailed
	}
}
