package wire

import (
	"movies-db/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Post("/", movieHandler.FetchMovie)        // POST /api/movies - fetch from catalog by title
		r.Get("/", movieHandler.GetMovies)          // GET /api/movies - list with filters
		r.Get("/{id}", movieHandler.GetMovieByID)   // GET /api/movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /api/movies/{id} - comments cascade
	})
}
