package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mkowalczyk/flashcards/internal/errors"
	"github.com/mkowalczyk/flashcards/internal/user/domain"
)

func newMySQLMockDB(t *testing.T) (*MySQLUserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewMySQLUserRepository(db), mock
}

func TestMySQLUserRepository_ExistsByUsername(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Puszmen12").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByUsername(ctx, "Puszmen12")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMySQLUserRepository_Create(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "Puszmen12",
		Email:        "puszmen12@gmail.com",
		PasswordHash: "argon2id$hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID.String(), user.Username, user.Email, user.PasswordHash).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(ctx, user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLUserRepository_Create_DuplicateEntry(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "Puszmen12",
		Email:        "other@gmail.com",
		PasswordHash: "argon2id$hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(apperrors.New(
			"Error 1062 (23000): Duplicate entry 'Puszmen12' for key 'users.username'",
		))

	err := repo.Create(ctx, user)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestMySQLUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "Newuser1",
		Email:        "puszmen12@gmail.com",
		PasswordHash: "argon2id$hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(apperrors.New(
			"Error 1062 (23000): Duplicate entry 'puszmen12@gmail.com' for key 'users.email'",
		))

	err := repo.Create(ctx, user)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyTaken)
}
