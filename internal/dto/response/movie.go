package response

import (
	"time"

	"movies-db/internal/data/entity"
	"movies-db/pkg/utils"
)

type MovieResponse struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Cover       *string    `json:"cover"`
	ReleaseDate *string    `json:"release_date"`
	Duration    *int       `json:"duration"`
	Director    *string    `json:"director"`
	Website     *string    `json:"website"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// MovieToResponse converts movie; an unsaved movie has no id or created_at.
func MovieToResponse(movie *entity.Movie) MovieResponse {
	resp := MovieResponse{
		Title:       movie.Title,
		Cover:       movie.Cover,
		ReleaseDate: utils.FormatDate(movie.ReleaseDate),
		Duration:    movie.Duration,
		Director:    movie.Director,
		Website:     movie.Website,
	}
	if !movie.CreatedAt.IsZero() {
		resp.ID = movie.ID.String()
		createdAt := movie.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
