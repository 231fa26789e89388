package accountbooks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tunckiral/pocketledger/internal/apperrors"
	"github.com/tunckiral/pocketledger/internal/dbx"
	"github.com/tunckiral/pocketledger/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, book *models.AccountBook) (int64, error) {
	query := `INSERT INTO account_books (user_id, name, description)
	          VALUES ($1, $2, $3)
	          RETURNING account_book_id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, book.UserID, book.Name, book.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.AccountBook, error) {
	query := `SELECT account_book_id, user_id, name, description, created_at
	          FROM account_books
	          WHERE user_id = $1
	          ORDER BY account_book_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	books := []models.AccountBook{}
	for rows.Next() {
		var b models.AccountBook
		if err := rows.Scan(&b.AccountBookID, &b.UserID, &b.Name, &b.Description, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return books, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, accountBookID int64) (*models.AccountBook, error) {
	query := `SELECT account_book_id, user_id, name, description, created_at
	          FROM account_books
	          WHERE account_book_id = $1`

	b := &models.AccountBook{}
	err := r.db.QueryRowContext(ctx, query, accountBookID).
		Scan(&b.AccountBookID, &b.UserID, &b.Name, &b.Description, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

// Update touches only rows owned by userID; the affected count tells the
// caller whether the book existed.
func (r *PostgresRepository) Update(ctx context.Context, accountBookID, userID int64, name, description string) (int64, error) {
	query := `UPDATE account_books SET name = $1, description = $2
	          WHERE account_book_id = $3 AND user_id = $4`

	res, err := r.db.ExecContext(ctx, query, name, description, accountBookID, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) Delete(ctx context.Context, accountBookID, userID int64) (int64, error) {
	query := `DELETE FROM account_books WHERE account_book_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, accountBookID, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM account_books WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}
