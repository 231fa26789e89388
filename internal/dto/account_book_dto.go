package dto

import "time"

type CreateAccountBookRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateAccountBookRequest struct {
	AccountBookID int64  `json:"account_book_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
}

type DeleteAccountBookRequest struct {
	AccountBookID int64 `json:"account_book_id"`
}

type CreateAccountBookResponse struct {
	AccountBookID int64 `json:"account_book_id"`
}

type AccountBookResponse struct {
	AccountBookID int64     `json:"account_book_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
