package adaptor

import (
	"encoding/json"
	"net/http"

	"movies-db/internal/dto/request"
	"movies-db/internal/usecase"
	"movies-db/pkg/utils"

	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// CreateComment handles POST /api/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	comment, err := h.service.AddComment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create comment")
		return
	}

	utils.ResponseCreated(w, "Comment created successfully", comment)
}

// GetComments handles GET /api/comments, optionally filtered by ?movie_id=
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.GetComments(r.Context(), r.URL.Query().Get("movie_id"))
	if err != nil {
		handleServiceError(w, r, h.log, err, "get comments")
		return
	}

	utils.ResponseSuccess(w, "success", comments)
}
