// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkowalczyk/flashcards/internal/errors"
	"github.com/mkowalczyk/flashcards/internal/i18n"
)

// User represents a registered user. PasswordHash never holds the raw
// password; the entity is immutable once persisted.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Domain-specific errors for user registration. Each carries its stable wire
// code and the message key resolved by the translator at the boundary.
var (
	// ErrUserAlreadyExists indicates the username is taken by another user.
	ErrUserAlreadyExists = errors.NewDomainError(errors.KindUserAlreadyExists, i18n.KeyUserAlreadyExists)

	// ErrEmailAlreadyTaken indicates the email belongs to another user.
	ErrEmailAlreadyTaken = errors.NewDomainError(errors.KindEmailAlreadyTaken, i18n.KeyEmailAlreadyTaken)

	// ErrWeakPassword indicates the password fails the strength policy.
	ErrWeakPassword = errors.NewDomainError(errors.KindWeakPassword, i18n.KeyWeakPassword)

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")
)
