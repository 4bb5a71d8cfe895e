package game

import (
	"github.com/L1VER1337/block/internal/protocol"
)

type Game struct {
	api  API
	boot *Bootstrapper

	// bootstrap / re-sync plumbing
	bootCh chan BootResult
	userCh chan BootResult

	// session user, owned by the game loop; panels get values, never refs
	user    protocol.User
	stats   UserStats
	demo    bool
	offline bool

	scr       screen
	activeTab tab

	// panels
	game    *gamePanel
	leaders *leaderboardPanel
	profile *profilePanel
	duels   comingSoonPanel
	shop    comingSoonPanel

	// bottom bar buttons
	duelsBtn, leadersBtn, gameBtn, shopBtn, profileBtn rect
}
