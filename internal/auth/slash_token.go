package auth

import (
	"crypto/subtle"

	apperrors "github.com/spec-kit/ticket-bridge/pkg/util"
)

// SlashTokenVerifier authenticates slash-command invocations against the
// pre-shared token Mattermost attaches to every command request.
type SlashTokenVerifier struct {
	secret []byte
}

// NewSlashTokenVerifier builds a verifier for the configured secret.
func NewSlashTokenVerifier(secret string) *SlashTokenVerifier {
	return &SlashTokenVerifier{secret: []byte(secret)}
}

// Verify compares token against the shared secret in constant time.
// A mismatch returns an Unauthorized error and nothing else happens.
func (v *SlashTokenVerifier) Verify(token string) error {
	if subtle.ConstantTimeCompare([]byte(token), v.secret) != 1 {
		return apperrors.NewUnauthorized("invalid slash command token")
	}
	return nil
}
