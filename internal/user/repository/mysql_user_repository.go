package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mkowalczyk/flashcards/internal/database"
	"github.com/mkowalczyk/flashcards/internal/user/domain"

	apperrors "github.com/mkowalczyk/flashcards/internal/errors"
)

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// ExistsByUsername reports whether a user with the given username exists.
func (r *MySQLUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`

	if err := querier.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check username existence")
	}
	return exists, nil
}

// ExistsByEmail reports whether a user with the given email exists.
func (r *MySQLUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	if err := querier.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check email existence")
	}
	return exists, nil
}

// Create inserts a new user, translating unique-key violations into the
// domain error for the violated column.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, user.ID.String(), user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return uniqueViolationError(err)
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByUsername retrieves a user by username
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	var id string
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, email, password_hash, created_at, updated_at
			  FROM users WHERE username = ?`

	err := querier.QueryRowContext(ctx, query, username).Scan(
		&id, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}

	parsed, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	user.ID = parsed

	return &user, nil
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate key violation (error 1062).
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
