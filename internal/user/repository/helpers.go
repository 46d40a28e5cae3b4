package repository

import (
	"github.com/google/uuid"

	apperrors "github.com/mkowalczyk/flashcards/internal/errors"
)

// parseUserID parses a stored user ID. MySQL stores UUIDs as CHAR(36).
func parseUserID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(err, "failed to parse stored user id")
	}
	return parsed, nil
}
