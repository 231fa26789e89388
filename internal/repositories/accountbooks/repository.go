package accountbooks

import (
	"context"

	"github.com/tunckiral/pocketledger/internal/models"
)

type Repository interface {
	Create(ctx context.Context, book *models.AccountBook) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.AccountBook, error)
	GetByID(ctx context.Context, accountBookID int64) (*models.AccountBook, error)
	Update(ctx context.Context, accountBookID, userID int64, name, description string) (int64, error)
	Delete(ctx context.Context, accountBookID, userID int64) (int64, error)
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}
