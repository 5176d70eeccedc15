package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"movies-db/internal/data/repository"
	"movies-db/internal/dto/request"
	"movies-db/internal/dto/response"
	"movies-db/pkg/utils"

	"go.uber.org/zap"
)

type RankingService interface {
	GetRanking(ctx context.Context, req *request.RankingRequest) ([]response.RankingEntry, error)
}

type rankingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRankingService(repo *repository.Repository, log *zap.Logger) RankingService {
	return &rankingService{
		repo: repo,
		log:  log.With(zap.String("service", "ranking")),
	}
}

// GetRanking ranks every movie by its comments published within
// [date_from, date_until]. Tied counts share a rank and the next lower count
// gets the following rank.
func (s *rankingService) GetRanking(ctx context.Context, req *request.RankingRequest) ([]response.RankingEntry, error) {
	var missing []string
	if req.DateFrom == "" {
		missing = append(missing, "date_from not provided")
	}
	if req.DateUntil == "" {
		missing = append(missing, "date_until not provided")
	}
	if len(missing) > 0 {
		return nil, utils.InvalidInput(
			"Please provide date range (date_from and date_until) to generate the ranking.",
			missing...,
		)
	}

	var malformed []string
	dateFrom, err := utils.ParseDate(req.DateFrom)
	if err != nil {
		malformed = append(malformed, "date_from must be a date in YYYY-MM-DD format")
	}
	dateUntil, err := utils.ParseDate(req.DateUntil)
	if err != nil {
		malformed = append(malformed, "date_until must be a date in YYYY-MM-DD format")
	}
	if len(malformed) > 0 {
		return nil, utils.InvalidInput("Invalid date range.", malformed...)
	}

	counts, err := s.repo.Ranking.CountCommentsInRange(ctx, dateFrom, dateUntil)
	if err != nil {
		return nil, fmt.Errorf("get ranking: %w", err)
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].TotalComments > counts[j].TotalComments
	})

	totals := make([]int64, len(counts))
	for i, c := range counts {
		totals[i] = c.TotalComments
	}
	ranks := DenseRank(totals)

	entries := make([]response.RankingEntry, len(counts))
	for i, c := range counts {
		entries[i] = response.RankingEntry{
			MovieResponse: response.MovieToResponse(&c.Movie),
			TotalComments: c.TotalComments,
			Rank:          ranks[i],
		}
	}

	s.log.Info("Ranking computed",
		zap.String("date_from", dateFrom.Format(time.DateOnly)),
		zap.String("date_until", dateUntil.Format(time.DateOnly)),
		zap.Int("movies", len(entries)),
	)

	return entries, nil
}

// DenseRank ranks totals, which must be sorted in descending order.
// Equal totals share a rank; each new lower total increments the rank by one.
func DenseRank(totals []int64) []int {
	ranks := make([]int, len(totals))
	rank := 0
	for i, total := range totals {
		if i == 0 || total != totals[i-1] {
			rank++
		}
		ranks[i] = rank
	}
	return ranks
}
