package usecase

import (
	"movies-db/internal/data/repository"
	"movies-db/internal/provider"
	"movies-db/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Comment CommentService
	Ranking RankingService
}

func NewService(repo *repository.Repository, metadata provider.MetadataProvider, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(repo, metadata, log),
		Comment: NewCommentService(repo, config.Policy, log),
		Ranking: NewRankingService(repo, log),
	}
}
