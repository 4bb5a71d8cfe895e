package game

import (
	"testing"
	"time"

	"github.com/L1VER1337/block/internal/protocol"
)

func newTestGame(api API) *Game {
	g := &Game{
		api:       api,
		scr:       screenHome,
		activeTab: tabGame,
		bootCh:    make(chan BootResult, 1),
		userCh:    make(chan BootResult, 4),
	}
	g.boot = NewBootstrapper(api, nil)
	g.game = newGamePanel(newPollSurface(), g.submitScore)
	g.leaders = newLeaderboardPanel(api)
	g.profile = newProfilePanel(api, g.rename)
	g.mountTab(g.activeTab)
	return g
}

func TestSetTabSwitchesAndRemounts(t *testing.T) {
	fetches := 0
	api := &fakeAPI{
		boardFn: func(int) ([]protocol.LeaderboardEntry, error) {
			fetches++
			return []protocol.LeaderboardEntry{{UserID: "u1", Username: "alice", BestScore: 10, Rank: 1}}, nil
		},
	}
	g := newTestGame(api)

	g.setTab(tabLeaders)
	waitFor(t, func() bool { g.leaders.load.poll(); return g.leaders.load.done() })
	if fetches != 1 {
		t.Fatalf("mount fetches = %d, want 1", fetches)
	}

	// unmount resets, remount refetches
	g.setTab(tabGame)
	if g.leaders.load.done() {
		t.Fatalf("unmounted panel kept its data")
	}
	g.setTab(tabLeaders)
	waitFor(t, func() bool { g.leaders.load.poll(); return g.leaders.load.done() })
	if fetches != 2 {
		t.Fatalf("remount fetches = %d, want 2", fetches)
	}
}

func TestSetTabIdempotent(t *testing.T) {
	fetches := 0
	api := &fakeAPI{
		boardFn: func(int) ([]protocol.LeaderboardEntry, error) {
			fetches++
			return nil, nil
		},
	}
	g := newTestGame(api)

	g.setTab(tabLeaders)
	waitFor(t, func() bool { g.leaders.load.poll(); return g.leaders.load.done() })

	g.setTab(tabLeaders) // reselect: no remount, no refetch
	if !g.leaders.load.done() {
		t.Fatalf("reselecting the active tab reset the panel")
	}
	if fetches != 1 {
		t.Fatalf("fetches = %d, want 1", fetches)
	}
	if g.activeTab != tabLeaders {
		t.Fatalf("active tab = %v", g.activeTab)
	}
}

func TestLeaderboardFallsBackToPlaceholder(t *testing.T) {
	g := newTestGame(&fakeAPI{}) // every call fails

	g.setTab(tabLeaders)
	waitFor(t, func() bool { g.leaders.load.poll(); return g.leaders.load.done() })

	rows := g.leaders.load.data
	want := placeholderBoard()
	if !g.leaders.load.fallback {
		t.Fatalf("failed fetch must be flagged as fallback")
	}
	if len(rows) != len(want) {
		t.Fatalf("placeholder rows = %d, want %d", len(rows), len(want))
	}
	for i, e := range rows {
		if e != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, e, want[i])
		}
		if e.Rank != i+1 {
			t.Fatalf("placeholder ranks must ascend from 1, row %d has rank %d", i, e.Rank)
		}
	}
}

func TestSubmitScoreResyncsUser(t *testing.T) {
	var submitted protocol.GameScoreCreate
	api := &fakeAPI{
		submitFn: func(req protocol.GameScoreCreate) (protocol.GameScore, error) {
			submitted = req
			return protocol.GameScore{ID: "s1"}, nil
		},
		userFn: func(id string) (protocol.User, error) {
			return protocol.User{ID: id, Username: "alice", BestScore: 200, GamesPlayed: 4, TotalScore: 450}, nil
		},
		statsFn: func(string) (protocol.StatsResponse, error) {
			return protocol.StatsResponse{Rank: 5}, nil
		},
	}
	g := newTestGame(api)
	g.user = protocol.User{ID: "u1", Username: "alice", BestScore: 100}

	g.submitScore(200, 90*time.Second)

	select {
	case res := <-g.userCh:
		g.applyUser(res)
	case <-time.After(2 * time.Second):
		t.Fatalf("no re-sync after successful submit")
	}
	if submitted.UserID != "u1" || submitted.Score != 200 || submitted.GameDuration != 90 {
		t.Fatalf("submitted = %+v", submitted)
	}
	if g.stats.BestScore != 200 || g.stats.Rank != 5 {
		t.Fatalf("stats after re-sync = %+v", g.stats)
	}
}

func TestSubmitFailureIsSilent(t *testing.T) {
	g := newTestGame(&fakeAPI{}) // submit fails
	g.user = protocol.User{ID: "u1", Username: "alice"}

	g.submitScore(100, time.Second)

	select {
	case <-g.userCh:
		t.Fatalf("failed submit must not re-sync")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestOfflineSubmitFoldsLocally(t *testing.T) {
	g := newTestGame(&fakeAPI{})
	g.user = protocol.User{ID: "local-abc", Username: "demo_1"}

	// the game loop drains userCh between runs; do the same here
	for i, score := range []int{150, 90} {
		g.submitScore(score, time.Second)
		select {
		case res := <-g.userCh:
			g.applyUser(res)
		case <-time.After(time.Second):
			t.Fatalf("offline submit %d not folded", i)
		}
	}
	if g.stats.BestScore != 150 || g.stats.GamesPlayed != 2 || g.stats.TotalScore != 240 {
		t.Fatalf("offline stats = %+v", g.stats)
	}
}

func TestRenameRoutesThroughResync(t *testing.T) {
	api := &fakeAPI{
		updateFn: func(id string, req protocol.UserUpdate) (protocol.User, error) {
			if req.Username == nil || *req.Username != "newname" {
				t.Errorf("update req = %+v", req)
			}
			return protocol.User{ID: id, Username: "newname", BestScore: 100}, nil
		},
	}
	g := newTestGame(api)
	g.user = protocol.User{ID: "u1", Username: "alice", BestScore: 100}
	g.stats = UserStats{Username: "alice", BestScore: 100, Rank: 7}

	g.rename("newname")

	select {
	case res := <-g.userCh:
		g.applyUser(res)
	case <-time.After(2 * time.Second):
		t.Fatalf("rename produced no user refresh")
	}
	if g.stats.Username != "newname" {
		t.Fatalf("username = %q", g.stats.Username)
	}
	if g.stats.Rank != 7 {
		t.Fatalf("rename must keep the known rank, got %d", g.stats.Rank)
	}
}
