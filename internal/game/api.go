package game

import (
	"github.com/L1VER1337/block/internal/protocol"

	gamenet "github.com/L1VER1337/block/internal/game/net"
)

// API is the remote backend as the shell sees it. The live implementation
// delegates to the net wrappers; tests substitute fakes.
type API interface {
	CreateUser(req protocol.UserCreate) (protocol.User, error)
	User(id string) (protocol.User, error)
	UpdateUser(id string, req protocol.UserUpdate) (protocol.User, error)
	SubmitScore(req protocol.GameScoreCreate) (protocol.GameScore, error)
	UserScores(id string, limit int) ([]protocol.GameScore, error)
	Leaderboard(limit int) ([]protocol.LeaderboardEntry, error)
	UserStats(id string) (protocol.StatsResponse, error)
}

type restAPI struct{}

func (restAPI) CreateUser(req protocol.UserCreate) (protocol.User, error) {
	return gamenet.CreateUser(req)
}

func (restAPI) User(id string) (protocol.User, error) {
	return gamenet.User(id)
}

func (restAPI) UpdateUser(id string, req protocol.UserUpdate) (protocol.User, error) {
	return gamenet.UpdateUser(id, req)
}

func (restAPI) SubmitScore(req protocol.GameScoreCreate) (protocol.GameScore, error) {
	return gamenet.SubmitScore(req)
}

func (restAPI) UserScores(id string, limit int) ([]protocol.GameScore, error) {
	return gamenet.UserScores(id, limit)
}

func (restAPI) Leaderboard(limit int) ([]protocol.LeaderboardEntry, error) {
	return gamenet.Leaderboard(limit)
}

func (restAPI) UserStats(id string) (protocol.StatsResponse, error) {
	return gamenet.UserStats(id)
}
