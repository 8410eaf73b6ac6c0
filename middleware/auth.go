package middleware

import (
	"errors"
	"net/http"
	"strings"

	"registrations/config"
	"registrations/utils"
	"registrations/utils/permissions"
	"registrations/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	claimsContextKey = "claims"
	authCookieName   = "auth_token"
)

var errNoClaims = errors.New("no claims in request context")

// AuthMiddleware validates the bearer token (or auth cookie) and stores the caller's claims in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		claims, err := utils.ParseJWT(tokenStr, config.Env.JWTSecret)
		if err != nil {
			logrus.WithError(err).Debug("Rejected token")
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// extractToken reads the Authorization header, falling back to the auth cookie
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetClaims stores claims on the context, used by AuthMiddleware and tests
func SetClaims(c *gin.Context, claims permissions.Claims) {
	c.Set(claimsContextKey, claims)
}

// GetClaimsFromRequest returns the caller's claims, answering 401 itself when absent
func GetClaimsFromRequest(c *gin.Context) (permissions.Claims, error) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, "Unauthorized access")
		return permissions.Claims{}, errNoClaims
	}
	claims, ok := value.(permissions.Claims)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized access")
		return permissions.Claims{}, errNoClaims
	}
	return claims, nil
}
