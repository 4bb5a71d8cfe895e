package protocol

type GameScore struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Score        int    `json:"score"`
	GameDuration int    `json:"game_duration,omitempty"` // seconds
}

type GameScoreCreate struct {
	UserID       string `json:"user_id"`
	Score        int    `json:"score"`
	GameDuration int    `json:"game_duration,omitempty"`
}
