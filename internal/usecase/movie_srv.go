package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movies-db/internal/data/entity"
	"movies-db/internal/data/repository"
	"movies-db/internal/dto/request"
	"movies-db/internal/dto/response"
	"movies-db/internal/provider"
	"movies-db/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	FetchMovie(ctx context.Context, title string, persist bool) (*response.MovieResponse, error)
	GetMovies(ctx context.Context, req *request.MovieFilterRequest) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo     *repository.Repository
	metadata provider.MetadataProvider
	log      *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	metadata provider.MetadataProvider,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:     repo,
		metadata: metadata,
		log:      log.With(zap.String("service", "movie")),
	}
}

// FetchMovie looks title up in the catalog and, when persist is set, stores the
// result and returns the stored row. With persist unset the repository is not touched.
func (s *movieService) FetchMovie(ctx context.Context, title string, persist bool) (*response.MovieResponse, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, utils.InvalidInput("Please provide movie title.")
	}

	meta, err := s.metadata.Lookup(ctx, title)
	if err != nil {
		return nil, s.providerError(title, err)
	}

	movie := &entity.Movie{
		Title:       meta.Title,
		Cover:       meta.Cover,
		ReleaseDate: meta.ReleaseDate,
		Duration:    meta.Duration,
		Director:    meta.Director,
		Website:     meta.Website,
	}

	if !persist {
		s.log.Info("Movie fetched without saving", zap.String("title", movie.Title))
		resp := response.MovieToResponse(movie)
		return &resp, nil
	}

	if errs := utils.ValidateStruct(movie); len(errs) > 0 {
		s.log.Warn("Fetched movie failed validation",
			zap.String("title", title),
			zap.Any("errors", errs),
		)
		appErr := utils.PersistenceFailure("Movie could not be saved", errors.New(utils.FormatValidationErrors(errs)))
		appErr.Errors = utils.ValidationErrorList(errs)
		return nil, appErr
	}

	movie.ID = uuid.New()
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, utils.PersistenceFailure("Movie could not be saved", err)
	}

	saved, err := s.repo.Movie.FindByID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("reload movie: %w", err)
	}
	if saved == nil {
		return nil, fmt.Errorf("reload movie %s: not found after insert", movie.ID)
	}

	s.log.Info("Movie saved",
		zap.String("movie_id", saved.ID.String()),
		zap.String("title", saved.Title),
		zap.String("provider", s.metadata.Name()),
	)

	resp := response.MovieToResponse(saved)
	return &resp, nil
}

func (s *movieService) providerError(title string, err error) error {
	var notFound *provider.NotFoundError
	if errors.As(err, &notFound) {
		return utils.NotFound(notFound.Error())
	}

	s.log.Error("Metadata lookup failed",
		zap.String("title", title),
		zap.String("provider", s.metadata.Name()),
		zap.Error(err),
	)
	return utils.TransportFailure("Movie details could not be fetched", err)
}

func (s *movieService) GetMovies(ctx context.Context, req *request.MovieFilterRequest) ([]response.MovieResponse, error) {
	filter := entity.MovieFilter{}
	var errs []string

	if req.Title != "" {
		filter.Title = &req.Title
	}
	if req.Director != "" {
		filter.Director = &req.Director
	}

	ints := []struct {
		name  string
		value string
		dest  **int
	}{
		{"duration__gt", req.DurationGT, &filter.DurationGT},
		{"duration__lt", req.DurationLT, &filter.DurationLT},
		{"release_year", req.ReleaseYear, &filter.ReleaseYear},
		{"release_year__gt", req.ReleaseYearGT, &filter.ReleaseYearGT},
		{"release_year__lt", req.ReleaseYearLT, &filter.ReleaseYearLT},
	}
	for _, f := range ints {
		n, ok := utils.ParseOptionalInt(f.value)
		if !ok {
			errs = append(errs, f.name+" must be an integer")
			continue
		}
		*f.dest = n
	}
	if len(errs) > 0 {
		return nil, utils.InvalidInput("Invalid movie filters", errs...)
	}

	movies, err := s.repo.Movie.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Info("Movies retrieved", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, utils.InvalidInput(fmt.Sprintf("Invalid movie id %q.", movieID))
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, utils.NotFound(fmt.Sprintf("Movie with id %s does not exist.", id))
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// DeleteMovie removes the movie together with its comments.
func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return utils.InvalidInput(fmt.Sprintf("Invalid movie id %q.", movieID))
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.NotFound(fmt.Sprintf("Movie with id %s does not exist.", id))
		}
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}
