package request

// RankingRequest carries the raw date_from/date_until query values.
type RankingRequest struct {
	DateFrom  string
	DateUntil string
}
