package usecase

import (
	"context"
	"time"

	"github.com/mkowalczyk/flashcards/internal/metrics"
	"github.com/mkowalczyk/flashcards/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// RegisterUser records metrics for registration operations.
func (u *userUseCaseWithMetrics) RegisterUser(
	ctx context.Context,
	input RegisterUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.RegisterUser(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "register", status)
	u.metrics.RecordDuration(ctx, "user", "register", time.Since(start), status)

	return user, err
}

// GetUserByUsername records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) GetUserByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetUserByUsername(ctx, username)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "get_by_username", status)
	u.metrics.RecordDuration(ctx, "user", "get_by_username", time.Since(start), status)

	return user, err
}
