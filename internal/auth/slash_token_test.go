package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/spec-kit/ticket-bridge/pkg/util"
)

func TestVerifyAcceptsMatchingToken(t *testing.T) {
	v := NewSlashTokenVerifier("s3cret-token")
	assert.NoError(t, v.Verify("s3cret-token"))
}

func TestVerifyRejectsMismatches(t *testing.T) {
	v := NewSlashTokenVerifier("s3cret-token")

	for _, token := range []string{
		"",
		"s3cret-tokeN",
		"s3cret-token ",
		"s3cret-toke",
		"completely-different",
	} {
		err := v.Verify(token)
		assert.Error(t, err, "token %q must be rejected", token)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	}
}
