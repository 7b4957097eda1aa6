package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"Valid", "reader_01", nil},
		{"ValidWithAllowedSymbols", "first.last@site+tag-x", nil},
		{"ReservedMe", "me", ErrUsernameReserved},
		{"ReservedMeUppercase", "ME", ErrUsernameReserved},
		{"ReservedMeMixedCase", "Me", ErrUsernameReserved},
		{"MePrefixAllowed", "me2", nil},
		{"DisallowedCharacter", "a!b", ErrUsernameCharset},
		{"Space", "a b", ErrUsernameCharset},
		{"Empty", "", ErrUsernameEmpty},
		{"TooLong", strings.Repeat("a", MaxUsernameLength+1), ErrUsernameTooLong},
		{"ExactlyMaxLength", strings.Repeat("a", MaxUsernameLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("sci-fi_2"))
	assert.ErrorIs(t, ValidateSlug("bad slug"), ErrSlugInvalid)
	assert.ErrorIs(t, ValidateSlug("ué"), ErrSlugInvalid)
	assert.ErrorIs(t, ValidateSlug(strings.Repeat("a", MaxSlugLength+1)), ErrSlugTooLong)
	assert.ErrorIs(t, ValidateSlug(""), ErrSlugInvalid)
}

func TestValidateTitleName(t *testing.T) {
	assert.NoError(t, ValidateTitleName("Solaris"))
	assert.ErrorIs(t, ValidateTitleName(""), ErrTitleNameEmpty)
	assert.ErrorIs(t, ValidateTitleName(strings.Repeat("n", MaxNameLength+1)), ErrTitleNameTooLong)
}
