package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"registrations/config"
	"registrations/models"
	"registrations/utils"
	"registrations/utils/permissions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Env.JWTSecret = testSecret
	os.Exit(m.Run())
}

func claimsRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		claims, err := GetClaimsFromRequest(c)
		if err != nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": claims.Role, "sub": claims.Subject})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	chef := &models.Participant{ID: uuid.New(), Role: models.RoleChef, University: models.UniversityUQAC.Ptr()}
	valid, err := utils.GenerateJWT(chef, testSecret, time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateJWT(chef, testSecret, -time.Minute)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT(chef, "another-secret", time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{"bearer", "Bearer " + valid, "", http.StatusOK},
		{"lowercase scheme", "bearer " + valid, "", http.StatusOK},
		{"cookie", "", valid, http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, "", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, "", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, "", http.StatusUnauthorized},
	}
	r := claimsRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: authCookieName, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), chef.ID.String())
			}
		})
	}
}

func TestGetClaimsWithoutMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	_, err := GetClaimsFromRequest(c)
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	want := permissions.Claims{Subject: uuid.New(), Role: models.RoleOrganizer}
	SetClaims(c, want)
	got, err := GetClaimsFromRequest(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter("test", config.RateLimitConfig{Rate: 1, Burst: 2, Interval: time.Minute})
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	// Buckets are per client
	assert.True(t, rl.Allow("10.0.0.2"))

	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// Refill never exceeds the burst
	now = now.Add(time.Hour)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter("test", config.RateLimitConfig{Rate: 1, Burst: 1, Interval: time.Hour})
	r := gin.New()
	r.Use(MetricsMiddleware(), RateLimiterMiddleware(rl))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 2)
	for range 2 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
