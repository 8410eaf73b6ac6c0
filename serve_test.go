package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"registrations/config"
	"registrations/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsAllowsClientOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(cors.New(corsConfig(config.Config{ClientUrl: "https://register.example.com"})))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://register.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://register.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNewParticipantServiceRejectsBadConfig(t *testing.T) {
	_, err := newParticipantService(config.Config{DefaultUniversity: "harvard", PasswordLength: 16})
	assert.Error(t, err)

	_, err = newParticipantService(config.Config{DefaultUniversity: string(models.UniversityETS), PasswordLength: 8})
	assert.Error(t, err)

	svc, err := newParticipantService(config.Config{DefaultUniversity: string(models.UniversityETS), PasswordLength: 20})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
