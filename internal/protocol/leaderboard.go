package protocol

// LeaderboardEntry is one row of the global board, rank 1 = best.
type LeaderboardEntry struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url,omitempty"`
	BestScore int    `json:"best_score"`
	Rank      int    `json:"rank"`
}

// StatsResponse is the GET /api/stats/user/{id} payload. Only Rank and
// RecentScores are consumed; the embedded user echo is ignored in favor of
// the create/fetch response.
type StatsResponse struct {
	User         User        `json:"user"`
	Rank         int         `json:"rank"`
	RecentScores []GameScore `json:"recent_scores"`
}
