package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunckiral/pocketledger/internal/apperrors"
)

var testSecret = []byte("test-secret")

func TestTokenIssuer_IssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 7*24*time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, -time.Minute)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assertAuthError(t, err)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	other := NewTokenIssuer([]byte("other-secret"), time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assertAuthError(t, err)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Validate(tok)
		assertAuthError(t, err)
	}
}

func TestTokenIssuer_SubjectBoundToUser(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	first, err := issuer.Issue(1)
	require.NoError(t, err)
	second, err := issuer.Issue(2)
	require.NoError(t, err)

	id1, err := issuer.Validate(first)
	require.NoError(t, err)
	id2, err := issuer.Validate(second)
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)
}

func assertAuthError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 401, appErr.Status)
}
