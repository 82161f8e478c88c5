package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lexcase/internal/core/apperr"
)

func fail(t *testing.T, production, install bool, err error) (int, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if install {
		r.Use(Boundary(zap.NewNop(), production))
	}
	r.GET("/x", func(c *gin.Context) { Fail(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestFail(t *testing.T) {
	cause := errors.New("pq: connection refused")
	step := apperr.Internal("Server error during registration", cause)

	tests := []struct {
		name       string
		production bool
		install    bool
		err        error
		status     int
		msg        string
	}{
		{"conflict passes through", true, true, apperr.Conflict("taken"), http.StatusConflict, "taken"},
		{"internal in production", true, true, step, http.StatusInternalServerError, "Server error during registration"},
		{"internal in development", false, true, step, http.StatusInternalServerError, "pq: connection refused"},
		{"unclassified in production", true, true, cause, http.StatusInternalServerError, MsgInternal},
		{"unclassified in development", false, true, cause, http.StatusInternalServerError, "pq: connection refused"},
		{"no boundary hides details", false, false, cause, http.StatusInternalServerError, MsgInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, env := fail(t, tc.production, tc.install, tc.err)
			assert.Equal(t, tc.status, status)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.msg, env.Error.Message)
		})
	}
}

func TestFailKeepsValidationDetails(t *testing.T) {
	status, env := fail(t, true, true, apperr.Validation([]apperr.FieldError{{Field: "email", Message: "Email is required"}}))
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Email is required", env.Error.Message)
	assert.Equal(t, []apperr.FieldError{{Field: "email", Message: "Email is required"}}, env.Error.Details)
}
