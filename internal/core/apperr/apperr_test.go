package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{Internal("boom", errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusOf(tc.err), tc.err.Error())
	}
}

func TestAsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("signup: %w", Conflict("User with this email already exists"))

	ae, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, ae.Kind)
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(nil, KindConflict))
}

func TestInternalUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Server error during login", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Server error during login", err.Error())
}

func TestValidationJoinsMessages(t *testing.T) {
	err := Validation([]FieldError{
		{Field: "email", Message: "Email is required"},
		{Field: "password", Message: "Password is required"},
	})

	ae, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "Email is required; Password is required", ae.Error())
	assert.Len(t, ae.Details, 2)
}
