// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"github.com/mkowalczyk/flashcards/internal/user/domain"
	"github.com/mkowalczyk/flashcards/internal/user/usecase"
)

// ToRegisterUserInput converts a RegisterUserRequest DTO to a RegisterUserInput use case input
func ToRegisterUserInput(req RegisterUserRequest) usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToUserResponse converts a domain User model to a UserResponse DTO
// This enforces the boundary between internal domain models and external API contracts
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Email:    user.Email,
	}
}
