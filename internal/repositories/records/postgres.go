package records

import (
	"context"
	"fmt"

	"github.com/tunckiral/pocketledger/internal/dbx"
	"github.com/tunckiral/pocketledger/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, record *models.Record) (int64, error) {
	query := `INSERT INTO records (account_book_id, user_id, amount, category, note, record_date)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING record_id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		record.AccountBookID, record.UserID, record.Amount,
		record.Category, record.Note, record.RecordDate).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) ListByAccountBook(ctx context.Context, accountBookID, userID int64) ([]models.Record, error) {
	query := `SELECT record_id, account_book_id, user_id, amount, category, note, record_date, created_at
	          FROM records
	          WHERE account_book_id = $1 AND user_id = $2
	          ORDER BY record_date, record_id`

	rows, err := r.db.QueryContext(ctx, query, accountBookID, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.Record{}
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.RecordID, &rec.AccountBookID, &rec.UserID, &rec.Amount,
			&rec.Category, &rec.Note, &rec.RecordDate, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, record *models.Record) (int64, error) {
	query := `UPDATE records SET amount = $1, category = $2, note = $3, record_date = $4
	          WHERE record_id = $5 AND user_id = $6`

	res, err := r.db.ExecContext(ctx, query,
		record.Amount, record.Category, record.Note, record.RecordDate,
		record.RecordID, record.UserID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) Delete(ctx context.Context, recordID, userID int64) (int64, error) {
	query := `DELETE FROM records WHERE record_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, recordID, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) DeleteByAccountBook(ctx context.Context, accountBookID, userID int64) (int64, error) {
	query := `DELETE FROM records WHERE account_book_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, accountBookID, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}
