package auth

import (
	"errors"
	"net/http"
	"time"

	"registrations/middleware"
	"registrations/services"
	"registrations/utils"
	"registrations/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// rememberMeDuration is the token lifetime when the caller asks to stay signed in
const rememberMeDuration = 30 * 24 * time.Hour

// AuthHandler signs callers in against the participant records
type AuthHandler struct {
	svc    *services.ParticipantService
	secret string
	ttl    time.Duration
}

// NewAuthHandler signs tokens with secret, valid for ttl unless the caller asks to be remembered
func NewAuthHandler(svc *services.ParticipantService, secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{svc: svc, secret: secret, ttl: ttl}
}

// Login authenticates a participant and returns a JWT
// @Summary User Login
// @Description Authenticate with the email and one-time password received at registration
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	participant, err := h.svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
			return
		}
		logrus.WithError(err).Error("Login failed")
		response.Error(c, http.StatusInternalServerError, ErrLoginFailed)
		return
	}

	ttl := h.ttl
	if req.RememberMe {
		ttl = rememberMeDuration
	}
	token, err := utils.GenerateJWT(participant, h.secret, ttl)
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token, ttl)
	c.JSON(http.StatusOK, AuthResponse{
		Token:      token,
		ID:         participant.ID,
		Email:      participant.Email,
		FirstName:  participant.FirstName,
		LastName:   participant.LastName,
		Role:       participant.Role,
		University: participant.University,
	})
}

// CheckAuth returns the claims of the current token
// @Summary Check Authentication
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	claims, err := middleware.GetClaimsFromRequest(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         claims.Subject,
		"role":       claims.Role,
		"university": claims.University,
	})
}

// Logout clears the authentication cookie
// @Summary User Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	setCookieToken(c, "", -time.Second)
	c.JSON(http.StatusOK, gin.H{"message": ErrLogoutSuccess})
}
