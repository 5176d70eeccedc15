package adaptor

import (
	"encoding/json"
	"net/http"

	"movies-db/internal/dto/request"
	"movies-db/internal/usecase"
	"movies-db/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// FetchMovie handles POST /api/movies
func (h *MovieHandler) FetchMovie(w http.ResponseWriter, r *http.Request) {
	var req request.FetchMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.FetchMovie(r.Context(), req.Title, req.Persist())
	if err != nil {
		handleServiceError(w, r, h.log, err, "fetch movie")
		return
	}

	if !req.Persist() {
		utils.ResponseSuccess(w, "Movie fetched successfully", movie)
		return
	}
	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.MovieFilterRequest{
		Title:         query.Get("title"),
		Director:      query.Get("director"),
		DurationGT:    query.Get("duration__gt"),
		DurationLT:    query.Get("duration__lt"),
		ReleaseYear:   query.Get("release_year"),
		ReleaseYearGT: query.Get("release_year__gt"),
		ReleaseYearLT: query.Get("release_year__lt"),
	}

	movies, err := h.service.GetMovies(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, r, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, r, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}
