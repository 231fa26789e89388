package dto

import "time"

type CreateRecordRequest struct {
	AccountBookID int64   `json:"account_book_id"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Note          string  `json:"note"`
	RecordDate    string  `json:"record_date"`
}

type ListRecordsRequest struct {
	AccountBookID int64 `json:"account_book_id"`
}

type UpdateRecordRequest struct {
	RecordID   int64   `json:"record_id"`
	Amount     float64 `json:"amount"`
	Category   string  `json:"category"`
	Note       string  `json:"note"`
	RecordDate string  `json:"record_date"`
}

type DeleteRecordRequest struct {
	RecordID int64 `json:"record_id"`
}

type CreateRecordResponse struct {
	RecordID int64 `json:"record_id"`
}

type RecordResponse struct {
	RecordID      int64     `json:"record_id"`
	AccountBookID int64     `json:"account_book_id"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Note          string    `json:"note"`
	RecordDate    time.Time `json:"record_date"`
	CreatedAt     time.Time `json:"created_at"`
}
