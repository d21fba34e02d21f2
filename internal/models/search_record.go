package models

import (
	"time"

	"github.com/google/uuid"
)

// InputKind classifies what the user typed into the search box.
type InputKind string

const (
	InputURL     InputKind = "url"
	InputKeyword InputKind = "keyword"
)

// SearchRecord is one entry in a user's search history. Records are written
// once per search and never mutated; the owner can delete them one at a time
// or all at once.
type SearchRecord struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Query         string    `db:"query"`
	InputKind     InputKind `db:"input_kind"`
	StoreType     string    `db:"store_type"` // set only for URL input
	ResultCount   int       `db:"result_count"`
	CheapestPrice *float64  `db:"cheapest_price"`
	CreatedAt     time.Time `db:"created_at"`
}
