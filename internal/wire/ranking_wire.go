package wire

import (
	"movies-db/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRanking(r chi.Router, rankingHandler *adaptor.RankingHandler) {
	// GET /api/top?date_from=&date_until= - dense-rank leaderboard by comment count
	r.Get("/api/top", rankingHandler.GetRanking)
}
