package auth

import (
	"registrations/config"
	"registrations/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to authentication
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup, h *AuthHandler) {
	loginLimiter := middleware.NewRateLimiter("login", config.LoginRateLimitConfig)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimiterMiddleware(loginLimiter), h.Login)
		auth.GET("/check", middleware.AuthMiddleware(), CheckAuth)
		auth.POST("/logout", Logout)
	}
}
