package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedProduct is a product the user explicitly bookmarked. Only the notes
// field is mutable after creation.
type SavedProduct struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	URL       string    `db:"url"`
	Price     float64   `db:"price"`
	Currency  string    `db:"currency"`
	ImageURL  *string   `db:"image_url"`
	Store     string    `db:"store"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
