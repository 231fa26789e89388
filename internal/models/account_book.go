package models

import "time"

type AccountBook struct {
	AccountBookID int64
	UserID        int64
	Name          string
	Description   string
	CreatedAt     time.Time
}
