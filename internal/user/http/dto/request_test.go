package dto

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mkowalczyk/flashcards/internal/errors"
)

func validRequest() RegisterUserRequest {
	return RegisterUserRequest{
		Username: "Puszmen12",
		Email:    "puszmen12@gmail.com",
		Password: "Sdgdregd123%",
	}
}

func TestRegisterUserRequest_Validate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestRegisterUserRequest_Validate_Username(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"too short", "abc"},
		{"too long", "abcdefghijklmnopq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Username = tt.username

			err := req.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

			var fieldErrs validation.Errors
			require.True(t, apperrors.As(err, &fieldErrs))
			assert.Contains(t, fieldErrs, "username")
		})
	}
}

func TestRegisterUserRequest_Validate_Email(t *testing.T) {
	req := validRequest()
	req.Email = "not-an-email"

	err := req.Validate()
	require.Error(t, err)

	var fieldErrs validation.Errors
	require.True(t, apperrors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs, "email")
}

func TestRegisterUserRequest_Validate_PasswordRequiredOnly(t *testing.T) {
	// Structural validation only requires presence; strength is a business
	// rule enforced by the use case.
	req := validRequest()
	req.Password = "qwerty"
	assert.NoError(t, req.Validate())

	req.Password = ""
	err := req.Validate()
	require.Error(t, err)

	var fieldErrs validation.Errors
	require.True(t, apperrors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs, "password")
}

func TestMappers(t *testing.T) {
	req := validRequest()
	input := ToRegisterUserInput(req)
	assert.Equal(t, req.Username, input.Username)
	assert.Equal(t, req.Email, input.Email)
	assert.Equal(t, req.Password, input.Password)
}
