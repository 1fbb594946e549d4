package verify

import (
	"fmt"

	domain "supportbridge/backend/internal/domain/identity"
)

// Service chains credential validation and identity signing. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	tokens TokenAuthenticator
	signer IdentitySigner
}

// NewService constructs a verification service.
func NewService(tokens TokenAuthenticator, signer IdentitySigner) *Service {
	return &Service{tokens: tokens, signer: signer}
}

// VerifyAndSign validates the bearer credential and returns the keyed digest
// of the identity it asserts. Every validation failure is wrapped into
// domain.ErrUnauthorized; the wrapped cause is for operator logs only and
// must never reach the caller.
func (s *Service) VerifyAndSign(credential string) (string, error) {
	claims, err := s.tokens.Validate(credential)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return s.signer.Sign(claims.Identity), nil
}
