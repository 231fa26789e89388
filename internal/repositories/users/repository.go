package users

import (
	"context"

	"github.com/tunckiral/pocketledger/internal/models"
)

// UpdateFields carries the columns to change; nil means leave untouched.
type UpdateFields struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether no column would change.
func (f UpdateFields) IsEmpty() bool {
	return f.Username == nil && f.Email == nil && f.PasswordHash == nil
}

type Repository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	Update(ctx context.Context, userID int64, fields UpdateFields) (int64, error)
	Delete(ctx context.Context, userID int64) (int64, error)
}
