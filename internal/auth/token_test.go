package auth

import (
	"testing"
	"time"

	"adboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("user-123", models.UserRoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleUser, claims.Role)
}

func TestTokenService_RoundTrip_AdminRole(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("admin-1", models.UserRoleAdmin)
	require.NoError(t, err)

	claims, err := svc.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, claims.Role)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", -1*time.Second)

	tok, err := svc.Issue("u1", models.UserRoleUser)
	require.NoError(t, err)

	_, err = svc.Parse(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("right-secret", time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour)

	tok, err := issuer.Issue("u2", models.UserRoleUser)
	require.NoError(t, err)

	_, err = verifier.Parse(tok)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", time.Hour)

	for _, tok := range []string{"not.a.jwt", "", "garbage"} {
		_, err := svc.Parse(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}
