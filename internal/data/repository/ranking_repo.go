package repository

import (
	"context"
	"fmt"
	"time"

	"movies-db/internal/data/entity"
	"movies-db/pkg/database"

	"go.uber.org/zap"
)

type RankingRepository interface {
	// CountCommentsInRange returns every movie with the number of its comments
	// published in [from, until], both bounds inclusive. Movies without such
	// comments are returned with 0. Rows are ordered by count desc, then title.
	CountCommentsInRange(ctx context.Context, from, until time.Time) ([]*entity.MovieCommentCount, error)
}

type rankingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRankingRepository(db database.PgxIface, log *zap.Logger) RankingRepository {
	return &rankingRepository{
		db:  db,
		log: log.With(zap.String("repository", "ranking")),
	}
}

// The date window lives in the join condition, not in WHERE, so movies whose
// comments all fall outside it still come back with a zero count.
const commentCountsInRangeQuery = `
	SELECT m.id, m.title, m.cover, m.release_date, m.duration, m.director, m.website, m.created_at,
	       COUNT(c.id) AS total_comments
	FROM movies m
	LEFT JOIN comments c
	       ON c.movie_id = m.id
	      AND c.publish_date >= $1
	      AND c.publish_date <= $2
	GROUP BY m.id
	ORDER BY total_comments DESC, m.title ASC, m.id ASC
`

func (r *rankingRepository) CountCommentsInRange(ctx context.Context, from, until time.Time) ([]*entity.MovieCommentCount, error) {
	rows, err := r.db.Query(ctx, commentCountsInRangeQuery, from, until)
	if err != nil {
		r.log.Error("Failed to count comments in range",
			zap.Error(err),
			zap.Time("date_from", from),
			zap.Time("date_until", until),
		)
		return nil, fmt.Errorf("count comments in range: %w", err)
	}
	defer rows.Close()

	counts := []*entity.MovieCommentCount{}
	for rows.Next() {
		var row entity.MovieCommentCount
		err := rows.Scan(
			&row.Movie.ID,
			&row.Movie.Title,
			&row.Movie.Cover,
			&row.Movie.ReleaseDate,
			&row.Movie.Duration,
			&row.Movie.Director,
			&row.Movie.Website,
			&row.Movie.CreatedAt,
			&row.TotalComments,
		)
		if err != nil {
			r.log.Error("Failed to scan ranking row", zap.Error(err))
			return nil, fmt.Errorf("scan ranking row: %w", err)
		}
		counts = append(counts, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ranking rows: %w", err)
	}

	r.log.Debug("Comment counts computed", zap.Int("movies", len(counts)))

	return counts, nil
}
