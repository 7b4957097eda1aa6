package security

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GenerateConfirmationCode returns a fresh one-time confirmation code. The
// plaintext goes out by email; only its bcrypt hash is persisted.
func GenerateConfirmationCode() string {
	return uuid.New().String()
}

// HashConfirmationCode creates a bcrypt hash from the given plaintext code.
func HashConfirmationCode(code string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyConfirmationCode checks the provided plaintext code against the stored
// bcrypt hash.
func VerifyConfirmationCode(hashedCode, providedCode string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(providedCode))
}
