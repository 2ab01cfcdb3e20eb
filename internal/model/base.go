package model

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the fields every persisted entity shares.
type Base struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
