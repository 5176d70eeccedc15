package wire

import (
	"movies-db/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler) {
	// POST /api/comments - add a comment to a movie
	r.Post("/api/comments", commentHandler.CreateComment)

	// GET /api/comments?movie_id= - list comments
	r.Get("/api/comments", commentHandler.GetComments)
}
