package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunckiral/pocketledger/internal/apperrors"
)

func applyEntries(t *testing.T, fields ...Field) []string {
	t.Helper()
	err := Apply(fields...)
	require.Error(t, err)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ValidationError", appErr.Name)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Data did not match allowed structure", appErr.Message)
	return appErr.InvalidEntries
}

func TestApply_AllFieldsValid(t *testing.T) {
	err := Apply(
		Username("TestUser1"),
		Password("testPassword1"),
		Email("bigstuff@gmail.com"),
	)
	assert.NoError(t, err)
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"too short", "fs", "username must be at least 5 characters"},
		{"bad characters", "fs|=", `username must match the following: "/^[a-zA-Z0-9!@#$%^&*?]+$/"`},
		{"missing", "", "username is a required field"},
		{"charset checked before length", "ab|", `username must match the following: "/^[a-zA-Z0-9!@#$%^&*?]+$/"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := applyEntries(t, Username(tt.value))
			assert.Equal(t, []string{tt.want}, entries)
		})
	}
}

func TestUsername_AllowedSpecialCharacters(t *testing.T) {
	assert.NoError(t, Apply(Username("us!@#$%^&*?er")))
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"too short", "fs", "password must be at least 5 characters"},
		{"bad characters", "fs|=", `password must match the following: "/^[a-zA-Z0-9!@#$%^&*?]+$/"`},
		{"missing", "", "password is a required field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := applyEntries(t, Password(tt.value))
			assert.Equal(t, []string{tt.want}, entries)
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"not an email", "fdsafa", "email must be a valid email"},
		{"missing domain", "someone@", "email must be a valid email"},
		{"missing", "", "email is a required field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := applyEntries(t, Email(tt.value))
			assert.Equal(t, []string{tt.want}, entries)
		})
	}
}

func TestUserID(t *testing.T) {
	for _, v := range []int64{-1, 0} {
		entries := applyEntries(t, UserID(v))
		assert.Equal(t, []string{"user_id must be greater than or equal to 1"}, entries)
	}
	assert.NoError(t, Apply(UserID(1)))
}

// Violations across fields are collected, not reported one at a time.
func TestApply_CollectsAllViolations(t *testing.T) {
	entries := applyEntries(t,
		Username("fs"),
		Password("fs"),
	)
	assert.Equal(t, []string{
		"username must be at least 5 characters",
		"password must be at least 5 characters",
	}, entries)
}

func TestApply_EntriesFollowFieldOrder(t *testing.T) {
	entries := applyEntries(t,
		UserID(-1),
		Username("ok"),
		Password(""),
		Email("nope"),
	)
	assert.Equal(t, []string{
		"user_id must be greater than or equal to 1",
		"username must be at least 5 characters",
		"password is a required field",
		"email must be a valid email",
	}, entries)
}
