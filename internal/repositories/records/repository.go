package records

import (
	"context"

	"github.com/tunckiral/pocketledger/internal/models"
)

type Repository interface {
	Create(ctx context.Context, record *models.Record) (int64, error)
	ListByAccountBook(ctx context.Context, accountBookID, userID int64) ([]models.Record, error)
	Update(ctx context.Context, record *models.Record) (int64, error)
	Delete(ctx context.Context, recordID, userID int64) (int64, error)
	DeleteByAccountBook(ctx context.Context, accountBookID, userID int64) (int64, error)
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}
