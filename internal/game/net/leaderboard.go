package net

import (
	"fmt"
	"net/url"

	"github.com/L1VER1337/block/internal/protocol"
)

// Leaderboard fetches the global board, ordered by rank ascending.
func Leaderboard(limit int) ([]protocol.LeaderboardEntry, error) {
	return GetJSON[[]protocol.LeaderboardEntry](fmt.Sprintf("/api/leaderboard?limit=%d", limit))
}

// UserStats fetches rank and recent scores for one user.
func UserStats(id string) (protocol.StatsResponse, error) {
	return GetJSON[protocol.StatsResponse]("/api/stats/user/" + url.PathEscape(id))
}
