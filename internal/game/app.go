package game

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	gamenet "github.com/L1VER1337/block/internal/game/net"
	"github.com/L1VER1337/block/internal/protocol"
)

// New creates the game. Optional arg sets the platform ("android"/"ios"/
// "desktop").
func New(args ...string) ebiten.Game {
	if len(args) > 0 {
		SetPlatform(args[0])
	}

	api := restAPI{}
	g := &Game{
		api:       api,
		scr:       screenLoading,
		activeTab: tabGame,
		bootCh:    make(chan BootResult, 1),
		userCh:    make(chan BootResult, 4),
		duels:     comingSoonPanel{title: "Duels", blurb: "Challenge friends head to head"},
		shop:      comingSoonPanel{title: "Shop", blurb: "Boosters, themes and more"},
	}

	ident := HostIdentityFromEnv()
	if p, ok := ident.(InitDataIdentity); ok {
		gamenet.SetInitData(p.Raw)
	}
	g.boot = NewBootstrapper(api, ident)

	g.game = newGamePanel(NewDemoSurface(), g.submitScore)
	g.leaders = newLeaderboardPanel(api)
	g.profile = newProfilePanel(api, g.rename)

	// Bootstrap runs exactly once per application lifetime; the result
	// arrives over bootCh and is applied on the game loop.
	go func() {
		g.bootCh <- g.boot.Run()
	}()

	return g
}

func (g *Game) applyUser(res BootResult) {
	g.user = res.User
	g.stats = res.Stats
}

func (g *Game) Update() error {
	select {
	case res := <-g.bootCh:
		g.applyUser(res)
		g.demo = res.Demo
		g.offline = res.Offline
		g.scr = screenHome
		g.mountTab(g.activeTab)
	default:
	}

	if g.scr == screenLoading {
		return nil
	}

	select {
	case res := <-g.userCh:
		g.applyUser(res)
	default:
	}

	g.updateBottomBar()

	switch g.activeTab {
	case tabGame:
		g.game.update()
	case tabLeaders:
		g.leaders.update()
	case tabProfile:
		g.profile.update(g.user)
	}
	return nil
}

// setTab switches the visible panel. Selecting the active tab is a no-op:
// no unmount, no refetch.
func (g *Game) setTab(t tab) {
	if t == g.activeTab {
		return
	}
	g.unmountTab(g.activeTab)
	g.activeTab = t
	g.mountTab(t)
}

func (g *Game) mountTab(t tab) {
	switch t {
	case tabGame:
		g.game.mount()
	case tabLeaders:
		g.leaders.mount()
	case tabProfile:
		g.profile.mount(g.user.ID)
	}
}

func (g *Game) unmountTab(t tab) {
	switch t {
	case tabGame:
		g.game.unmount()
	case tabLeaders:
		g.leaders.unmount()
	case tabProfile:
		g.profile.unmount()
	}
}

// submitScore is the fire-and-forget submit-on-end side effect. A failure
// is logged, never surfaced; on success the changed user record triggers
// the idempotent re-sync.
func (g *Game) submitScore(score int, d time.Duration) {
	userID := g.user.ID
	if isLocalID(userID) {
		// fully local session: fold the run into the zero-backed stats so
		// the UI stays coherent without a backend
		u := g.user
		u.GamesPlayed++
		u.TotalScore += score
		if score > u.BestScore {
			u.BestScore = score
		}
		g.userCh <- BootResult{User: u, Stats: statsFromUser(u), Demo: g.demo, Offline: true}
		return
	}
	go func() {
		req := protocol.GameScoreCreate{UserID: userID, Score: score, GameDuration: int(d.Seconds())}
		if _, err := g.api.SubmitScore(req); err != nil {
			log.Printf("score submit failed: %v", err)
			return
		}
		if res, ok := g.boot.Resync(userID); ok {
			g.userCh <- res
		}
	}()
}

// rename persists a new display name through the backend and routes the
// fresh record through the same re-sync channel as a score submission.
func (g *Game) rename(name string) {
	userID := g.user.ID
	rank := g.stats.Rank
	go func() {
		u, err := g.api.UpdateUser(userID, protocol.UserUpdate{Username: &name})
		if err != nil {
			log.Printf("rename failed: %v", err)
			return
		}
		st := statsFromUser(u)
		st.Rank = rank
		g.userCh <- BootResult{User: u, Stats: st}
	}()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)

	if g.scr == screenLoading {
		cx := protocol.ScreenW / 2
		cy := protocol.ScreenH / 2
		fillRect(screen, rect{x: cx - 140, y: cy - 50, w: 280, h: 100}, colPanel)
		centerText(screen, protocol.GameName, cx, cy-12, color.White)
		centerText(screen, "Loading...", cx, cy+14, colDim)
		return
	}

	switch g.activeTab {
	case tabDuels:
		g.duels.draw(screen)
	case tabLeaders:
		g.leaders.draw(screen, g.user.ID)
	case tabGame:
		g.game.draw(screen, g.stats)
	case tabShop:
		g.shop.draw(screen)
	case tabProfile:
		g.profile.draw(screen, g.user, g.stats)
	}

	g.drawTopBar(screen)
	g.drawBottomBar(screen)
}

func (g *Game) Layout(w, h int) (int, int) { return protocol.ScreenW, protocol.ScreenH }
