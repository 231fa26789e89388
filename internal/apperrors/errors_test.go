package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantName   string
		wantStatus int
	}{
		{"validation", Validation([]string{"username must be at least 5 characters"}), "ValidationError", 400},
		{"auth", Auth(), "AuthError", 401},
		{"not found", NotFound("Failed to find user"), "NotFoundError", 400},
		{"bad request", BadRequest("Invalid request body"), "BadRequestError", 400},
		{"conflict", Conflict("Username is already taken"), "ConflictError", 400},
		{"store", Store(), "StoreError", 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.err.Name)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
		})
	}
}

func TestError_MessageIncludesEntries(t *testing.T) {
	err := Validation([]string{"username is a required field", "password is a required field"})
	assert.Equal(t,
		"Data did not match allowed structure: username is a required field; password is a required field",
		err.Error())
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", Auth())

	var appErr *Error
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 401, appErr.Status)
}

// Auth never says which half of the credential pair was wrong.
func TestAuth_Uninformative(t *testing.T) {
	assert.Equal(t, Auth().Message, Auth().Message)
	assert.NotContains(t, Auth().Message, "username not found")
}
