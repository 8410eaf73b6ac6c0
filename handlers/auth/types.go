package auth

import (
	"net/http"
	"time"

	"registrations/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for error messages
const (
	ErrInvalidCredentials  = "Invalid credentials"
	ErrInvalidRequest      = "Invalid request"
	ErrLoginFailed         = "Failed to process login"
	ErrTokenGenerateFailed = "Failed to generate token"
	ErrLogoutSuccess       = "Successfully logged out"
)

const authCookieName = "auth_token"

// LoginRequest model for login endpoints
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// AuthResponse model for authentication responses
type AuthResponse struct {
	Token      string             `json:"token"`
	ID         uuid.UUID          `json:"id"`
	Email      string             `json:"email"`
	FirstName  string             `json:"first_name"`
	LastName   string             `json:"last_name"`
	Role       models.Role        `json:"role"`
	University *models.University `json:"university"`
}

// setCookieToken sets the authentication token as a secure HTTP-only cookie
func setCookieToken(c *gin.Context, token string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		authCookieName,        // name
		token,                 // value
		int(maxAge.Seconds()), // max age in seconds
		"/",                   // path
		"",                    // domain
		true,                  // secure (HTTPS only)
		true,                  // httpOnly (not accessible via JavaScript)
	)
}
