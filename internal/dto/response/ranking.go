package response

// RankingEntry is one movie of the leaderboard.
type RankingEntry struct {
	MovieResponse
	TotalComments int64 `json:"total_comments"`
	Rank          int   `json:"rank"`
}
