package repository

import (
	"context"
	"fmt"

	"movies-db/internal/data/entity"
	"movies-db/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindAll(ctx context.Context, movieID *uuid.UUID) ([]*entity.Comment, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

// Create inserts comment and fills CreatedAt from the database.
// A movie_id with no matching movie fails with ErrForeignKeyViolation.
func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, movie_id, body, publish_date)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.ID,
		comment.MovieID,
		comment.Body,
		comment.PublishDate,
	).Scan(&comment.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("movie_id", comment.MovieID.String()),
		)
		return fmt.Errorf("create comment for movie %s: %w", comment.MovieID, translateError(err))
	}

	return nil
}

// FindAll lists comments newest first, optionally for a single movie.
func (r *commentRepository) FindAll(ctx context.Context, movieID *uuid.UUID) ([]*entity.Comment, error) {
	query := `SELECT id, movie_id, body, publish_date, created_at FROM comments`
	args := []any{}

	if movieID != nil {
		query += ` WHERE movie_id = $1`
		args = append(args, *movieID)
	}
	query += ` ORDER BY publish_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find comments", zap.Error(err))
		return nil, fmt.Errorf("find comments: %w", err)
	}
	defer rows.Close()

	comments := []*entity.Comment{}
	for rows.Next() {
		var comment entity.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.MovieID,
			&comment.Body,
			&comment.PublishDate,
			&comment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}
