package request

type CreateCommentRequest struct {
	MovieID     string  `json:"movie_id"`
	Body        *string `json:"body"`
	PublishDate *string `json:"publish_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
