package adaptor

import (
	"net/http"

	"movies-db/internal/usecase"
	"movies-db/pkg/middleware"
	"movies-db/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Comment *CommentHandler
	Ranking *RankingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Comment: NewCommentHandler(service.Comment, log),
		Ranking: NewRankingHandler(service.Ranking, log),
	}
}

// handleServiceError logs err at a level matching its kind, tags the access
// log line with the kind and writes the error body.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	kind := utils.KindOf(err)
	middleware.RecordErrorKind(r.Context(), kind)

	switch kind {
	case utils.KindInvalidInput, utils.KindNotFound:
		log.Warn(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation),
			zap.Stringer("kind", kind))
	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
			zap.Stringer("kind", kind))
	}

	utils.ResponseError(w, err)
}
