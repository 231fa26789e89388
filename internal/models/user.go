package models

import "time"

// User as stored. Password always holds the bcrypt hash, never the
// plaintext. UserID is store-assigned and immutable.
type User struct {
	UserID    int64
	Username  string
	Password  string
	Email     string
	CreatedAt time.Time
}
