package protocol

// User is the server's user record: identity plus cumulative stats.
// created_at/updated_at are not consumed client-side and are left out.
type User struct {
	ID          string `json:"id"`
	TelegramID  int64  `json:"telegram_id,omitempty"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	BestScore   int    `json:"best_score"`
	TotalScore  int    `json:"total_score"`
	GamesPlayed int    `json:"games_played"`
}

type UserCreate struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

// UserUpdate carries only the fields being changed.
type UserUpdate struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	PhotoURL  *string `json:"photo_url,omitempty"`
}
