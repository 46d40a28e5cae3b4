package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/mkowalczyk/flashcards/internal/errors"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"puszmen12@gmail.com",
		"first.last@example.co.uk",
		"user+tag@domain.io",
	}
	for _, email := range valid {
		assert.NoError(t, Email.Validate(email), email)
	}

	invalid := []string{
		"plainaddress",
		"@no-local-part.com",
		"user@",
		"user@domain",
		"user domain@example.com",
	}
	for _, email := range invalid {
		assert.Error(t, Email.Validate(email), email)
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("value"))
	assert.Error(t, NotBlank.Validate("   "))
	assert.Error(t, NotBlank.Validate("\t\n"))
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	wrapped := WrapValidationError(apperrors.New("username: the length must be between 4 and 16"))
	assert.Error(t, wrapped)
	assert.True(t, apperrors.Is(wrapped, apperrors.ErrInvalidInput))
}

func TestWrapValidationError_KeepsFieldDetail(t *testing.T) {
	fieldErrs := validation.Errors{
		"email": validation.NewError("validation_email_format", "must be a valid email address"),
	}

	wrapped := WrapValidationError(fieldErrs)
	assert.True(t, apperrors.Is(wrapped, apperrors.ErrInvalidInput))

	var unwrapped validation.Errors
	assert.True(t, apperrors.As(wrapped, &unwrapped))
	assert.Contains(t, unwrapped, "email")
}
