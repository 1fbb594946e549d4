package token

import (
	"errors"
	"fmt"
	"strings"

	domain "supportbridge/backend/internal/domain/identity"
	usecase "supportbridge/backend/internal/usecase/verify"

	"github.com/golang-jwt/jwt/v5"
)

// Authenticator validates bearer JWTs against a shared secret.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator constructs an authenticator keyed with the auth secret.
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Ensure Authenticator implements the TokenAuthenticator interface.
var _ usecase.TokenAuthenticator = (*Authenticator)(nil)

// Claims represents token claims. The email claim carries the asserted
// identity.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Validate parses and verifies the credential, returning the claim set when
// the signature checks out under the auth secret. Expiry and not-before are
// enforced by the parser. The credential itself is never logged or retained.
func (a *Authenticator) Validate(credential string) (domain.ClaimSet, error) {
	if strings.TrimSpace(credential) == "" {
		return domain.ClaimSet{}, fmt.Errorf("%w: empty credential", domain.ErrTokenInvalid)
	}

	token, err := jwt.ParseWithClaims(credential, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return domain.ClaimSet{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.ClaimSet{}, domain.ErrTokenInvalid
	}
	if strings.TrimSpace(claims.Email) == "" {
		return domain.ClaimSet{}, domain.ErrIdentityMissing
	}
	return domain.ClaimSet{Identity: claims.Email}, nil
}
