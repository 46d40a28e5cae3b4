package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mkowalczyk/flashcards/internal/errors"
	"github.com/mkowalczyk/flashcards/internal/user/domain"
)

func newMockDB(t *testing.T) (*PostgreSQLUserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgreSQLUserRepository(db), mock
}

func TestPostgreSQLUserRepository_ExistsByUsername(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Puszmen12").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsername(ctx, "Puszmen12")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_ExistsByUsername_NotFound(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Newuser1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByUsername(ctx, "Newuser1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPostgreSQLUserRepository_ExistsByEmail(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("puszmen12@gmail.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(ctx, "puszmen12@gmail.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPostgreSQLUserRepository_ExistsByEmail_QueryError(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("puszmen12@gmail.com").
		WillReturnError(apperrors.New("connection refused"))

	exists, err := repo.ExistsByEmail(ctx, "puszmen12@gmail.com")
	assert.Error(t, err)
	assert.False(t, exists)
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "Puszmen12",
		Email:        "puszmen12@gmail.com",
		PasswordHash: "argon2id$hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.PasswordHash).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(ctx, user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Create_DuplicateUsername(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "Puszmen12",
		Email:        "other@gmail.com",
		PasswordHash: "argon2id$hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(apperrors.New(
			`pq: duplicate key value violates unique constraint "users_username_key"`,
		))

	err := repo.Create(ctx, user)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestPostgreSQLUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "Newuser1",
		Email:        "puszmen12@gmail.com",
		PasswordHash: "argon2id$hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(apperrors.New(
			`pq: duplicate key value violates unique constraint "users_email_key"`,
		))

	err := repo.Create(ctx, user)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyTaken)
}

func TestPostgreSQLUserRepository_GetByUsername(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	id := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(id, "Puszmen12", "puszmen12@gmail.com", "argon2id$hash", now, now)

	mock.ExpectQuery("SELECT id, username, email, password_hash").
		WithArgs("Puszmen12").
		WillReturnRows(rows)

	user, err := repo.GetByUsername(ctx, "Puszmen12")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Puszmen12", user.Username)
	assert.Equal(t, "puszmen12@gmail.com", user.Email)
}

func TestPostgreSQLUserRepository_GetByUsername_NotFound(t *testing.T) {
	repo, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id, username, email, password_hash").
		WithArgs("Nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}))

	user, err := repo.GetByUsername(ctx, "Nobody")
	assert.Nil(t, user)
	assert.True(t, apperrors.Is(err, domain.ErrUserNotFound))
}
