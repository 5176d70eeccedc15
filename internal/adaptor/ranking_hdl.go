package adaptor

import (
	"net/http"

	"movies-db/internal/dto/request"
	"movies-db/internal/usecase"
	"movies-db/pkg/utils"

	"go.uber.org/zap"
)

type RankingHandler struct {
	service usecase.RankingService
	log     *zap.Logger
}

func NewRankingHandler(service usecase.RankingService, log *zap.Logger) *RankingHandler {
	return &RankingHandler{
		service: service,
		log:     log.With(zap.String("handler", "ranking")),
	}
}

// GetRanking handles GET /api/top?date_from=YYYY-MM-DD&date_until=YYYY-MM-DD
func (h *RankingHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.RankingRequest{
		DateFrom:  query.Get("date_from"),
		DateUntil: query.Get("date_until"),
	}

	ranking, err := h.service.GetRanking(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get ranking")
		return
	}

	utils.ResponseSuccess(w, "success", ranking)
}
