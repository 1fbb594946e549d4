package token

import (
	"testing"
	"time"

	domain "supportbridge/backend/internal/domain/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(email string, ttl time.Duration) Claims {
	return Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(ttl)),
		},
	}
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator("auth-secret")
	credential := mintToken(t, "auth-secret", validClaims("user@example.com", time.Hour))

	claims, err := a.Validate(credential)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Identity)
}

func TestValidate_EmptyCredential(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator("auth-secret")
	for _, credential := range []string{"", "   "} {
		_, err := a.Validate(credential)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator("auth-secret")
	credential := mintToken(t, "other-secret", validClaims("user@example.com", time.Hour))

	_, err := a.Validate(credential)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator("auth-secret")
	credential := mintToken(t, "auth-secret", validClaims("user@example.com", -time.Minute))

	_, err := a.Validate(credential)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator("auth-secret")
	_, err := a.Validate("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidate_MissingIdentityClaim(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator("auth-secret")
	for _, email := range []string{"", "   "} {
		credential := mintToken(t, "auth-secret", validClaims(email, time.Hour))
		_, err := a.Validate(credential)
		assert.ErrorIs(t, err, domain.ErrIdentityMissing)
	}
}

func TestValidate_RejectsNonHMACAlgorithm(t *testing.T) {
	t.Parallel()

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("user@example.com", time.Hour)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	a := NewAuthenticator("auth-secret")
	_, err = a.Validate(unsigned)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
