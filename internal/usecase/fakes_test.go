package usecase

import (
	"context"
	"sort"
	"time"

	"movies-db/internal/data/entity"
	"movies-db/internal/data/repository"
	"movies-db/internal/provider"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var testLogger = zap.NewNop()

// memStore backs the in-memory repositories used by the service tests.
// It mimics the schema: created_at is assigned on insert, comments need an
// existing movie, and deleting a movie deletes its comments.
type memStore struct {
	movies   map[uuid.UUID]*entity.Movie
	comments []*entity.Comment

	movieCreates     int
	movieCreateErr   error
	commentCreateErr error
	clock            time.Time
}

func newMemRepository() (*repository.Repository, *memStore) {
	store := &memStore{
		movies: map[uuid.UUID]*entity.Movie{},
		clock:  time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	repo := &repository.Repository{
		Movie:   memMovieRepo{store},
		Comment: memCommentRepo{store},
		Ranking: memRankingRepo{store},
	}
	return repo, store
}

func (s *memStore) addMovie(title string) *entity.Movie {
	movie := &entity.Movie{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: s.clock},
		Title: title,
	}
	s.movies[movie.ID] = movie
	return movie
}

func (s *memStore) addComment(movieID uuid.UUID, publishDate time.Time) {
	s.comments = append(s.comments, &entity.Comment{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: s.clock},
		MovieID:     movieID,
		Body:        "comment",
		PublishDate: publishDate,
	})
}

type memMovieRepo struct{ *memStore }

func (r memMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	r.movieCreates++
	if r.movieCreateErr != nil {
		return r.movieCreateErr
	}
	stored := *movie
	stored.CreatedAt = r.clock
	r.movies[movie.ID] = &stored
	return nil
}

func (r memMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (r memMovieRepo) FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error) {
	movies := []*entity.Movie{}
	for _, m := range r.movies {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].Title < movies[j].Title })
	return movies, nil
}

func (r memMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.movies[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.movies, id)

	kept := r.comments[:0]
	for _, c := range r.comments {
		if c.MovieID != id {
			kept = append(kept, c)
		}
	}
	r.comments = kept
	return nil
}

type memCommentRepo struct{ *memStore }

func (r memCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	if r.commentCreateErr != nil {
		return r.commentCreateErr
	}
	if _, ok := r.movies[comment.MovieID]; !ok {
		return repository.ErrForeignKeyViolation
	}
	comment.CreatedAt = r.clock
	stored := *comment
	r.comments = append(r.comments, &stored)
	return nil
}

func (r memCommentRepo) FindAll(ctx context.Context, movieID *uuid.UUID) ([]*entity.Comment, error) {
	comments := []*entity.Comment{}
	for _, c := range r.comments {
		if movieID == nil || c.MovieID == *movieID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

type memRankingRepo struct{ *memStore }

func (r memRankingRepo) CountCommentsInRange(ctx context.Context, from, until time.Time) ([]*entity.MovieCommentCount, error) {
	counts := []*entity.MovieCommentCount{}
	for _, m := range r.movies {
		row := &entity.MovieCommentCount{Movie: *m}
		for _, c := range r.comments {
			if c.MovieID == m.ID && !c.PublishDate.Before(from) && !c.PublishDate.After(until) {
				row.TotalComments++
			}
		}
		counts = append(counts, row)
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].TotalComments != counts[j].TotalComments {
			return counts[i].TotalComments > counts[j].TotalComments
		}
		return counts[i].Movie.Title < counts[j].Movie.Title
	})
	return counts, nil
}

type fakeProvider struct {
	meta      *provider.Metadata
	err       error
	calls     int
	lastTitle string
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Lookup(ctx context.Context, title string) (*provider.Metadata, error) {
	p.calls++
	p.lastTitle = title
	if p.err != nil {
		return nil, p.err
	}
	return p.meta, nil
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
