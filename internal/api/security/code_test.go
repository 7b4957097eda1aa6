package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationCodeRoundTrip(t *testing.T) {
	code := GenerateConfirmationCode()
	hash, err := HashConfirmationCode(code)
	require.NoError(t, err)

	assert.NotEqual(t, code, hash)
	assert.NoError(t, VerifyConfirmationCode(hash, code))
	assert.Error(t, VerifyConfirmationCode(hash, "wrong-code"))

	// Verification does not consume the hash, the same code matches again.
	assert.NoError(t, VerifyConfirmationCode(hash, code))
}

func TestGenerateConfirmationCodeUnique(t *testing.T) {
	assert.NotEqual(t, GenerateConfirmationCode(), GenerateConfirmationCode())
}
