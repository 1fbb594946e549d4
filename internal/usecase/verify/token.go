package verify

import (
	domain "supportbridge/backend/internal/domain/identity"
)

// TokenAuthenticator abstracts bearer credential validation.
type TokenAuthenticator interface {
	Validate(credential string) (domain.ClaimSet, error)
}

// IdentitySigner derives a keyed digest over a single identity attribute.
type IdentitySigner interface {
	Sign(identity string) string
}
