package domain

import (
	"encoding/json"
	"time"
)

// Document is an opaque record in the key-document store.
type Document struct {
	ID        string          `json:"_id"`
	Rev       int64           `json:"_rev"`
	Body      json.RawMessage `json:"body"`
	UpdatedAt time.Time       `json:"updated_at"`
}
