package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the repository-assigned identity of a record.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
