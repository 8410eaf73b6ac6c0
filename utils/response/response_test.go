package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		write  func(c *gin.Context)
		status int
		body   map[string]interface{}
	}{
		{"error", func(c *gin.Context) { Error(c, http.StatusForbidden, "nope") }, http.StatusForbidden, map[string]interface{}{"error": "nope"}},
		{"success", func(c *gin.Context) { Success(c, http.StatusOK, "ok") }, http.StatusOK, map[string]interface{}{"data": "ok"}},
		{"validation", func(c *gin.Context) { ValidationError(c, map[string]string{"email": "required"}) }, http.StatusBadRequest,
			map[string]interface{}{"errors": map[string]interface{}{"email": "required"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.write(c)

			assert.Equal(t, tc.status, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.body, body)
		})
	}
}
