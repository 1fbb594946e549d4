package identity

import "errors"

var (
	// ErrUnauthorized is the single failure callers are allowed to observe,
	// whatever the underlying cause.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTokenInvalid means a supplied credential cannot be validated.
	ErrTokenInvalid = errors.New("token invalid or expired")
	// ErrIdentityMissing means a validated credential carries no identity attribute.
	ErrIdentityMissing = errors.New("identity attribute missing")
)

// ClaimSet is the structured result of validating a bearer credential. It
// lives for the duration of one request and is never persisted.
type ClaimSet struct {
	Identity string
}
