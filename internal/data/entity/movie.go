package entity

import (
	"time"
)

// Movie is immutable once stored; deleting it removes its comments.
type Movie struct {
	Base
	Title       string     `db:"title" json:"title" validate:"required,max=120"`
	Cover       *string    `db:"cover" json:"cover"`
	ReleaseDate *time.Time `db:"release_date" json:"release_date"`
	Duration    *int       `db:"duration" json:"duration" validate:"omitempty,gt=0"` // minutes
	Director    *string    `db:"director" json:"director" validate:"omitempty,max=255"`
	Website     *string    `db:"website" json:"website"`
}

// MovieFilter narrows a movie listing. Nil fields are ignored.
type MovieFilter struct {
	Title         *string
	Director      *string
	DurationGT    *int
	DurationLT    *int
	ReleaseYear   *int
	ReleaseYearGT *int
	ReleaseYearLT *int
}
