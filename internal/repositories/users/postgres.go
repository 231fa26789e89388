package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tunckiral/pocketledger/internal/apperrors"
	"github.com/tunckiral/pocketledger/internal/dbx"
	"github.com/tunckiral/pocketledger/internal/models"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user and returns the store-assigned id. A username
// collision surfaces as ErrDuplicateUsername via the unique index, never
// through an application-side pre-check.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `INSERT INTO users (username, password, email)
	          VALUES ($1, $2, $3)
	          RETURNING user_id`

	var userID int64
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Password, user.Email).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, apperrors.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return userID, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT user_id, username, password, email, created_at FROM users
	          WHERE username = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `SELECT user_id, username, password, email, created_at FROM users
	          WHERE user_id = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, userID))
}

// Update changes only the supplied columns in a single statement. Column
// names come from a fixed list; every value is a bound parameter.
func (r *PostgresRepository) Update(ctx context.Context, userID int64, fields UpdateFields) (int64, error) {
	var (
		assignments []string
		args        []any
	)
	appendSet := func(column string, value string) {
		args = append(args, value)
		assignments = append(assignments, column+" = $"+strconv.Itoa(len(args)))
	}
	if fields.Username != nil {
		appendSet("username", *fields.Username)
	}
	if fields.Email != nil {
		appendSet("email", *fields.Email)
	}
	if fields.PasswordHash != nil {
		appendSet("password", *fields.PasswordHash)
	}
	if len(assignments) == 0 {
		return 0, nil
	}

	args = append(args, userID)
	query := "UPDATE users SET " + strings.Join(assignments, ", ") +
		" WHERE user_id = $" + strconv.Itoa(len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, apperrors.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes the user row. The affected count is the sole truth signal
// for whether anything was removed.
func (r *PostgresRepository) Delete(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.UserID, &user.Username, &user.Password, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
