package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SystemLog stores structured ERROR+ records for later querying.
type SystemLog struct {
	ID        uuid.UUID
	Timestamp time.Time
	Level     string
	Message   string
	TraceID   string
	UserID    *string
	Action    string
	Error     string
	Extra     json.RawMessage
}
