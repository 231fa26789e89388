package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/tunckiral/pocketledger/internal/apperrors"
	"github.com/tunckiral/pocketledger/internal/dbx"
	"github.com/tunckiral/pocketledger/internal/dto"
	"github.com/tunckiral/pocketledger/internal/models"
	"github.com/tunckiral/pocketledger/internal/repositories/repomanager"
	"github.com/tunckiral/pocketledger/internal/validate"
)

type AccountBookService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewAccountBookService(db *sql.DB, repos repomanager.RepositoryManager) *AccountBookService {
	return &AccountBookService{db: db, repos: repos}
}

func (s *AccountBookService) Create(ctx context.Context, userID int64, req *dto.CreateAccountBookRequest) (*dto.CreateAccountBookResponse, error) {
	if err := validate.Apply(validate.Name("name", req.Name)); err != nil {
		return nil, err
	}

	book := &models.AccountBook{UserID: userID, Name: req.Name, Description: req.Description}
	id, err := s.repos.AccountBooks(s.db).Create(ctx, book)
	if err != nil {
		return nil, s.fail(ctx, "create account book", err)
	}
	return &dto.CreateAccountBookResponse{AccountBookID: id}, nil
}

func (s *AccountBookService) List(ctx context.Context, userID int64) ([]dto.AccountBookResponse, error) {
	books, err := s.repos.AccountBooks(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, "list account books", err)
	}

	out := make([]dto.AccountBookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, dto.AccountBookResponse{
			AccountBookID: b.AccountBookID,
			Name:          b.Name,
			Description:   b.Description,
			CreatedAt:     b.CreatedAt,
		})
	}
	return out, nil
}

func (s *AccountBookService) Update(ctx context.Context, userID int64, req *dto.UpdateAccountBookRequest) (*dto.MessageResponse, error) {
	if err := validate.Apply(
		validate.ID("account_book_id", req.AccountBookID),
		validate.Name("name", req.Name),
	); err != nil {
		return nil, err
	}

	affected, err := s.repos.AccountBooks(s.db).Update(ctx, req.AccountBookID, userID, req.Name, req.Description)
	if err != nil {
		return nil, s.fail(ctx, "update account book", err)
	}
	if affected == 0 {
		return nil, apperrors.NotFound("Failed to find account book")
	}
	return &dto.MessageResponse{Message: "Account Book Updated Successfully"}, nil
}

// Delete removes the book and its records in one transaction.
func (s *AccountBookService) Delete(ctx context.Context, userID int64, req *dto.DeleteAccountBookRequest) (*dto.MessageResponse, error) {
	if err := validate.Apply(validate.ID("account_book_id", req.AccountBookID)); err != nil {
		return nil, err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repos.Records(tx).DeleteByAccountBook(ctx, req.AccountBookID, userID); err != nil {
			return err
		}
		affected, err := s.repos.AccountBooks(tx).Delete(ctx, req.AccountBookID, userID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Failed to find account book")
		}
		return nil, s.fail(ctx, "delete account book", err)
	}
	return &dto.MessageResponse{Message: "Account Book was deleted successfully"}, nil
}

func (s *AccountBookService) fail(ctx context.Context, action string, err error) error {
	slog.ErrorContext(ctx, "store operation failed", "action", action, "error", err)
	return apperrors.Store()
}
