package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	Base
	MovieID     uuid.UUID `db:"movie_id"`
	Body        string    `db:"body"`
	PublishDate time.Time `db:"publish_date"`
}

// MovieCommentCount is one movie with the number of its comments
// published inside a date window.
type MovieCommentCount struct {
	Movie         Movie
	TotalComments int64 `db:"total_comments"`
}
