package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunckiral/pocketledger/internal/dto"
	"github.com/tunckiral/pocketledger/internal/repositories/repomanager"
)

func newRecordService(t *testing.T) (*RecordService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRecordService(db, repomanager.NewPostgresRepositoryManager()), mock
}

func TestRecordCreate(t *testing.T) {
	svc, mock := newRecordService(t)

	mock.ExpectQuery(`(?s)SELECT .*\s+FROM\s+account_books\s+WHERE\s+account_book_id`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"account_book_id", "user_id", "name", "description", "created_at"}).
			AddRow(3, 7, "Groceries", "", time.Now()))
	mock.ExpectQuery(`INSERT\s+INTO\s+records`).
		WithArgs(int64(3), int64(7), -42.5, "food", "weekly shop", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"record_id"}).AddRow(11))

	resp, err := svc.Create(context.Background(), 7, &dto.CreateRecordRequest{
		AccountBookID: 3,
		Amount:        -42.5,
		Category:      "food",
		Note:          "weekly shop",
		RecordDate:    "2026-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.RecordID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordCreate_BookOwnedByOtherUser(t *testing.T) {
	svc, mock := newRecordService(t)

	mock.ExpectQuery(`(?s)SELECT .*\s+FROM\s+account_books\s+WHERE\s+account_book_id`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"account_book_id", "user_id", "name", "description", "created_at"}).
			AddRow(3, 99, "Not Yours", "", time.Now()))

	_, err := svc.Create(context.Background(), 7, &dto.CreateRecordRequest{
		AccountBookID: 3,
		Amount:        10,
		RecordDate:    "2026-08-01",
	})
	appErr := asAppError(t, err)
	assert.Equal(t, "NotFoundError", appErr.Name)
	assert.Equal(t, "Failed to find account book", appErr.Message)
	// the insert was never attempted
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordCreate_BadDate(t *testing.T) {
	svc, mock := newRecordService(t)

	_, err := svc.Create(context.Background(), 7, &dto.CreateRecordRequest{
		AccountBookID: 3,
		RecordDate:    "01/08/2026",
	})
	appErr := asAppError(t, err)
	assert.Equal(t, "ValidationError", appErr.Name)
	assert.Equal(t, []string{"record_date must be a valid date (YYYY-MM-DD)"}, appErr.InvalidEntries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordCreate_MissingDate(t *testing.T) {
	svc, mock := newRecordService(t)

	_, err := svc.Create(context.Background(), 7, &dto.CreateRecordRequest{AccountBookID: 3})
	appErr := asAppError(t, err)
	assert.Equal(t, []string{"record_date is a required field"}, appErr.InvalidEntries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordUpdate(t *testing.T) {
	svc, mock := newRecordService(t)

	mock.ExpectExec(`UPDATE\s+records`).
		WithArgs(99.0, "salary", "", sqlmock.AnyArg(), int64(11), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Update(context.Background(), 7, &dto.UpdateRecordRequest{
		RecordID:   11,
		Amount:     99,
		Category:   "salary",
		RecordDate: "2026-08-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Record Updated Successfully", resp.Message)
}

func TestRecordUpdate_Unknown(t *testing.T) {
	svc, mock := newRecordService(t)

	mock.ExpectExec(`UPDATE\s+records`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.Update(context.Background(), 7, &dto.UpdateRecordRequest{
		RecordID:   11,
		RecordDate: "2026-08-15",
	})
	appErr := asAppError(t, err)
	assert.Equal(t, "NotFoundError", appErr.Name)
	assert.Equal(t, "Failed to find record", appErr.Message)
}

func TestRecordDelete(t *testing.T) {
	svc, mock := newRecordService(t)

	mock.ExpectExec(`DELETE\s+FROM\s+records\s+WHERE\s+record_id`).
		WithArgs(int64(11), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Delete(context.Background(), 7, &dto.DeleteRecordRequest{RecordID: 11})
	require.NoError(t, err)
	assert.Equal(t, "Record was deleted successfully", resp.Message)
}

func TestRecordList_ScopedToCaller(t *testing.T) {
	svc, mock := newRecordService(t)

	mock.ExpectQuery(`(?s)SELECT .*\s+FROM\s+records\s+WHERE\s+account_book_id\s+=\s+\$1\s+AND\s+user_id`).
		WithArgs(int64(3), int64(7)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"record_id", "account_book_id", "user_id", "amount", "category", "note", "record_date", "created_at"}).
			AddRow(11, 3, 7, -42.5, "food", "weekly shop", time.Now(), time.Now()))

	recs, err := svc.List(context.Background(), 7, &dto.ListRecordsRequest{AccountBookID: 3})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, -42.5, recs[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
