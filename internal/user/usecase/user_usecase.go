// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"

	"github.com/allisson/go-pwdhash"
	"github.com/google/uuid"

	"github.com/mkowalczyk/flashcards/internal/database"
	apperrors "github.com/mkowalczyk/flashcards/internal/errors"
	"github.com/mkowalczyk/flashcards/internal/user/domain"
	"github.com/mkowalczyk/flashcards/internal/user/service"
)

// RegisterUserInput contains the input data for user registration. Structural
// validation (presence, lengths, email format) happens at the HTTP layer
// before this input is built; the business rules run here.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(txManager database.TxManager, userRepo UserRepository) (UseCase, error) {
	// Interactive policy balances hashing cost against login latency
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		passwordHasher: hasher,
	}, nil
}

// validateRegistration runs the business rules in fixed order, short-circuiting
// on the first violation: username uniqueness, then email uniqueness, then
// password strength. Exactly one domain error is reported even when several
// rules are violated.
func (uc *UserUseCase) validateRegistration(ctx context.Context, input RegisterUserInput) error {
	exists, err := uc.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return apperrors.Wrap(err, "failed to check username uniqueness")
	}
	if exists {
		return domain.ErrUserAlreadyExists
	}

	exists, err = uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return apperrors.Wrap(err, "failed to check email uniqueness")
	}
	if exists {
		return domain.ErrEmailAlreadyTaken
	}

	if !service.StrongPassword(input.Password) {
		return domain.ErrWeakPassword
	}

	return nil
}

// RegisterUser validates the registration, hashes the password and persists
// the user. The uniqueness checks and the insert share one transaction, so a
// concurrent duplicate registration fails at the store's unique constraint and
// surfaces as the matching domain error. Domain errors propagate unwrapped;
// zero writes happen on any validation failure.
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	user := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: input.Username,
		Email:    input.Email,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.validateRegistration(ctx, input); err != nil {
			return err
		}

		hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
		if err != nil {
			return apperrors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hashedPassword

		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username
func (uc *UserUseCase) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return uc.userRepo.GetByUsername(ctx, username)
}
