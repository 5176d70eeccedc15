package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movies-db/internal/data/entity"
	"movies-db/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const movieColumns = `id, title, cover, release_date, duration, director, website, created_at`

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func scanMovie(row pgx.Row, movie *entity.Movie) error {
	return row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Cover,
		&movie.ReleaseDate,
		&movie.Duration,
		&movie.Director,
		&movie.Website,
		&movie.CreatedAt,
	)
}

// Create inserts movie; created_at is assigned by the database.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, cover, release_date, duration, director, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Cover,
		movie.ReleaseDate,
		movie.Duration,
		movie.Director,
		movie.Website,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %q: %w", movie.Title, translateError(err))
	}

	return nil
}

// FindByID returns (nil, nil) when no movie has the id.
func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie entity.Movie
	err := scanMovie(r.db.QueryRow(ctx, query, id), &movie)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie %s: %w", id, err)
	}

	return &movie, nil
}

// buildMovieFilter renders the WHERE clause for filter and its positional args.
func buildMovieFilter(filter entity.MovieFilter) (string, []any) {
	var conditions []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Title != nil && *filter.Title != "" {
		add("title ILIKE $%d", "%"+escapeLike(*filter.Title)+"%")
	}
	if filter.Director != nil && *filter.Director != "" {
		add("director ILIKE $%d", "%"+escapeLike(*filter.Director)+"%")
	}
	if filter.DurationGT != nil {
		add("duration > $%d", *filter.DurationGT)
	}
	if filter.DurationLT != nil {
		add("duration < $%d", *filter.DurationLT)
	}
	if filter.ReleaseYear != nil {
		add("EXTRACT(YEAR FROM release_date) = $%d", *filter.ReleaseYear)
	}
	if filter.ReleaseYearGT != nil {
		add("EXTRACT(YEAR FROM release_date) > $%d", *filter.ReleaseYearGT)
	}
	if filter.ReleaseYearLT != nil {
		add("EXTRACT(YEAR FROM release_date) < $%d", *filter.ReleaseYearLT)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *movieRepository) FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error) {
	where, args := buildMovieFilter(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + movieColumns + ` FROM movies`)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(` ORDER BY title ASC, id ASC`)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		var movie entity.Movie
		if err := scanMovie(rows, &movie); err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

// Delete removes the movie; its comments go with it through ON DELETE CASCADE.
// ErrNotFound means no movie had the id.
func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}
