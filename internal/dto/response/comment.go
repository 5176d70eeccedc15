package response

import (
	"time"

	"movies-db/internal/data/entity"
	"movies-db/pkg/utils"
)

type CommentResponse struct {
	ID          string    `json:"id"`
	Movie       string    `json:"movie"`
	Body        string    `json:"body"`
	PublishDate string    `json:"publish_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID.String(),
		Movie:       comment.MovieID.String(),
		Body:        comment.Body,
		PublishDate: comment.PublishDate.Format(utils.DateLayout),
		CreatedAt:   comment.CreatedAt,
	}
}

func CommentsToResponse(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		out[i] = CommentToResponse(comment)
	}
	return out
}
