package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MaxUsernameLength = 150
	MaxEmailLength    = 254
	MaxNameLength     = 256
	MaxSlugLength     = 50
)

// "me" is reserved for the self-service endpoint and can never be a username.
const reservedUsername = "me"

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

var (
	ErrUsernameReserved = errors.New("username is reserved")
	ErrUsernameCharset  = errors.New("username may contain only letters, digits and . _ - @ +")
	ErrUsernameTooLong  = fmt.Errorf("username may not exceed %d characters", MaxUsernameLength)
	ErrUsernameEmpty    = errors.New("username must not be empty")
	ErrSlugInvalid      = errors.New("slug may contain only letters, digits, - and _")
	ErrSlugTooLong      = fmt.Errorf("slug may not exceed %d characters", MaxSlugLength)
	ErrTitleNameTooLong = fmt.Errorf("name may not exceed %d characters", MaxNameLength)
	ErrTitleNameEmpty   = errors.New("name must not be empty")
)

// ValidateUsername checks the username against the reserved token, the
// permitted alphabet and the length cap.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrUsernameEmpty
	}
	if len(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	if strings.EqualFold(username, reservedUsername) {
		return ErrUsernameReserved
	}
	if !usernamePattern.MatchString(username) {
		return ErrUsernameCharset
	}
	return nil
}

func ValidateSlug(slug string) error {
	if len(slug) > MaxSlugLength {
		return ErrSlugTooLong
	}
	if !slugPattern.MatchString(slug) {
		return ErrSlugInvalid
	}
	return nil
}

// ValidateTitleName guards the column size before the insert so the caller
// gets a field error instead of a storage truncation.
func ValidateTitleName(name string) error {
	if name == "" {
		return ErrTitleNameEmpty
	}
	if len(name) > MaxNameLength {
		return ErrTitleNameTooLong
	}
	return nil
}

// RegisterBindingValidators installs the custom "username" and "slug" tags on
// gin's validator engine so DTO binding rejects malformed input up front.
func RegisterBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return ValidateUsername(fl.Field().String()) == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return ValidateSlug(fl.Field().String()) == nil
	})
}
