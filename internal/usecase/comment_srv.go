package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movies-db/internal/data/entity"
	"movies-db/internal/data/repository"
	"movies-db/internal/dto/request"
	"movies-db/internal/dto/response"
	"movies-db/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentService interface {
	AddComment(ctx context.Context, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	GetComments(ctx context.Context, movieID string) ([]response.CommentResponse, error)
}

type commentService struct {
	repo           *repository.Repository
	allowEmptyBody bool
	now            func() time.Time
	log            *zap.Logger
}

func NewCommentService(repo *repository.Repository, policy utils.PolicyConfig, log *zap.Logger) CommentService {
	return &commentService{
		repo:           repo,
		allowEmptyBody: policy.AllowEmptyCommentBody,
		now:            time.Now,
		log:            log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) AddComment(ctx context.Context, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if req.MovieID == "" {
		return nil, utils.InvalidInput("Provide movie_id in request body.")
	}

	body := ""
	if req.Body != nil {
		body = *req.Body
	}
	if body == "" && !s.allowEmptyBody {
		return nil, utils.InvalidInput("Comment cannot be empty.")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.InvalidInput("Validation failed", utils.ValidationErrorList(errs)...)
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, utils.InvalidInput(fmt.Sprintf("Invalid movie_id %q.", req.MovieID))
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, utils.NotFound(fmt.Sprintf("Movie with id %s does not exist.", movieID))
	}

	publishDate := utils.Today(s.now())
	if req.PublishDate != nil && *req.PublishDate != "" {
		publishDate, err = utils.ParseDate(*req.PublishDate)
		if err != nil {
			return nil, utils.InvalidInput("Validation failed", "publish_date: Must be a date in 2006-01-02 format")
		}
	}

	comment := &entity.Comment{
		Base:        entity.Base{ID: uuid.New()},
		MovieID:     movie.ID,
		Body:        body,
		PublishDate: publishDate,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		// the movie was deleted between lookup and insert
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, utils.NotFound(fmt.Sprintf("Movie with id %s does not exist.", movieID))
		}
		return nil, utils.PersistenceFailure("Comment could not be saved", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("movie_id", movie.ID.String()),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

// GetComments lists all comments, or only those of movieID when it is not empty.
func (s *commentService) GetComments(ctx context.Context, movieID string) ([]response.CommentResponse, error) {
	var filter *uuid.UUID
	if movieID != "" {
		id, err := uuid.Parse(movieID)
		if err != nil {
			return nil, utils.InvalidInput(fmt.Sprintf("Invalid movie_id %q.", movieID))
		}
		filter = &id
	}

	comments, err := s.repo.Comment.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get comments", zap.Error(err))
		return nil, fmt.Errorf("get comments: %w", err)
	}

	return response.CommentsToResponse(comments), nil
}
