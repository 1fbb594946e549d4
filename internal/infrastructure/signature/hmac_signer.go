package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	usecase "supportbridge/backend/internal/usecase/verify"
)

// Signer derives keyed HMAC-SHA256 digests over identity attributes.
type Signer struct {
	secret []byte
}

// NewSigner constructs a signer keyed with the signing secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Ensure Signer implements the IdentitySigner interface.
var _ usecase.IdentitySigner = (*Signer)(nil)

// Sign returns the lowercase hexadecimal HMAC-SHA256 of the identity keyed by
// the signing secret. It is deterministic and total: the same input pair
// always yields the same 64-character digest.
func (s *Signer) Sign(identity string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(identity))
	return hex.EncodeToString(mac.Sum(nil))
}
