package net

import (
	"fmt"
	"net/url"

	"github.com/L1VER1337/block/internal/protocol"
)

// SubmitScore reports one finished run. The server folds it into the user's
// cumulative stats; the ack body is returned for completeness but callers
// may ignore it.
func SubmitScore(req protocol.GameScoreCreate) (protocol.GameScore, error) {
	return PostJSON[protocol.GameScoreCreate, protocol.GameScore](req, "/api/scores")
}

// UserScores fetches the user's most recent scores, newest first.
func UserScores(id string, limit int) ([]protocol.GameScore, error) {
	path := fmt.Sprintf("/api/scores/user/%s?limit=%d", url.PathEscape(id), limit)
	return GetJSON[[]protocol.GameScore](path)
}
