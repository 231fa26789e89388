package models

import "time"

// Record is a single income/expense entry inside an account book.
// Amount is negative for expenses.
type Record struct {
	RecordID      int64
	AccountBookID int64
	UserID        int64
	Amount        float64
	Category      string
	Note          string
	RecordDate    time.Time
	CreatedAt     time.Time
}
