package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/tunckiral/pocketledger/internal/apperrors"
	"github.com/tunckiral/pocketledger/internal/dto"
	"github.com/tunckiral/pocketledger/internal/models"
	"github.com/tunckiral/pocketledger/internal/repositories/repomanager"
	"github.com/tunckiral/pocketledger/internal/validate"
)

const recordDateLayout = "2006-01-02"

type RecordService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewRecordService(db *sql.DB, repos repomanager.RepositoryManager) *RecordService {
	return &RecordService{db: db, repos: repos}
}

// Create checks the account book belongs to the caller before inserting.
func (s *RecordService) Create(ctx context.Context, userID int64, req *dto.CreateRecordRequest) (*dto.CreateRecordResponse, error) {
	if err := validate.Apply(
		validate.ID("account_book_id", req.AccountBookID),
		recordDateField(req.RecordDate),
	); err != nil {
		return nil, err
	}
	recordDate, _ := time.Parse(recordDateLayout, req.RecordDate)

	book, err := s.repos.AccountBooks(s.db).GetByID(ctx, req.AccountBookID)
	if err != nil || book.UserID != userID {
		if err == nil || errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Failed to find account book")
		}
		return nil, s.fail(ctx, "find account book", err)
	}

	record := &models.Record{
		AccountBookID: req.AccountBookID,
		UserID:        userID,
		Amount:        req.Amount,
		Category:      req.Category,
		Note:          req.Note,
		RecordDate:    recordDate,
	}
	id, err := s.repos.Records(s.db).Create(ctx, record)
	if err != nil {
		return nil, s.fail(ctx, "create record", err)
	}
	return &dto.CreateRecordResponse{RecordID: id}, nil
}

func (s *RecordService) List(ctx context.Context, userID int64, req *dto.ListRecordsRequest) ([]dto.RecordResponse, error) {
	if err := validate.Apply(validate.ID("account_book_id", req.AccountBookID)); err != nil {
		return nil, err
	}

	recs, err := s.repos.Records(s.db).ListByAccountBook(ctx, req.AccountBookID, userID)
	if err != nil {
		return nil, s.fail(ctx, "list records", err)
	}

	out := make([]dto.RecordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecordResponse{
			RecordID:      r.RecordID,
			AccountBookID: r.AccountBookID,
			Amount:        r.Amount,
			Category:      r.Category,
			Note:          r.Note,
			RecordDate:    r.RecordDate,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out, nil
}

func (s *RecordService) Update(ctx context.Context, userID int64, req *dto.UpdateRecordRequest) (*dto.MessageResponse, error) {
	if err := validate.Apply(
		validate.ID("record_id", req.RecordID),
		recordDateField(req.RecordDate),
	); err != nil {
		return nil, err
	}
	recordDate, _ := time.Parse(recordDateLayout, req.RecordDate)

	record := &models.Record{
		RecordID:   req.RecordID,
		UserID:     userID,
		Amount:     req.Amount,
		Category:   req.Category,
		Note:       req.Note,
		RecordDate: recordDate,
	}
	affected, err := s.repos.Records(s.db).Update(ctx, record)
	if err != nil {
		return nil, s.fail(ctx, "update record", err)
	}
	if affected == 0 {
		return nil, apperrors.NotFound("Failed to find record")
	}
	return &dto.MessageResponse{Message: "Record Updated Successfully"}, nil
}

func (s *RecordService) Delete(ctx context.Context, userID int64, req *dto.DeleteRecordRequest) (*dto.MessageResponse, error) {
	if err := validate.Apply(validate.ID("record_id", req.RecordID)); err != nil {
		return nil, err
	}

	affected, err := s.repos.Records(s.db).Delete(ctx, req.RecordID, userID)
	if err != nil {
		return nil, s.fail(ctx, "delete record", err)
	}
	if affected == 0 {
		return nil, apperrors.NotFound("Failed to find record")
	}
	return &dto.MessageResponse{Message: "Record was deleted successfully"}, nil
}

func recordDateField(v string) validate.Field {
	return validate.Field{Name: "record_date", Value: v, Rules: []validation.Rule{
		validation.Required.Error("is a required field"),
		validation.Date(recordDateLayout).Error("must be a valid date (YYYY-MM-DD)"),
	}}
}

func (s *RecordService) fail(ctx context.Context, action string, err error) error {
	slog.ErrorContext(ctx, "store operation failed", "action", action, "error", err)
	return apperrors.Store()
}
