package repository

import (
	"errors"
	"fmt"

	"movies-db/pkg/database"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrUniqueViolation     = errors.New("unique constraint violated")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
	ErrConstraintViolation = errors.New("constraint violated")
)

type Repository struct {
	Movie   MovieRepository
	Comment CommentRepository
	Ranking RankingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:   NewMovieRepository(db, log),
		Comment: NewCommentRepository(db, log),
		Ranking: NewRankingRepository(db, log),
	}
}

// translateError tags Postgres integrity violations with one of the sentinel
// errors above while keeping the driver error in the chain.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var sentinel error
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		sentinel = ErrUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		sentinel = ErrForeignKeyViolation
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
		sentinel = ErrConstraintViolation
	default:
		return err
	}

	if pgErr.ConstraintName == "" {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return fmt.Errorf("%w (%s): %w", sentinel, pgErr.ConstraintName, err)
}
