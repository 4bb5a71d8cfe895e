package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/L1VER1337/block/internal/protocol"
)

func (g *Game) drawTopBar(screen *ebiten.Image) {
	fillRect(screen, rect{x: 0, y: 0, w: protocol.ScreenW, h: topBarH}, colPanel)

	drawAvatarTile(screen, pad, (topBarH-28)/2, 28, g.stats.Username)

	name := g.stats.Username
	if name == "" {
		name = "Player"
	}
	drawLabel(screen, trim(name, 18), pad+28+pad, topBarH/2+5, color.White)

	if g.offline {
		drawLabel(screen, "offline", pad+28+pad, topBarH-6, colFaint)
	} else if g.demo {
		drawLabel(screen, "demo", pad+28+pad, topBarH-6, colFaint)
	}

	right := fmt.Sprintf("Best %d", g.stats.BestScore)
	if g.stats.Rank > 0 {
		right += fmt.Sprintf("  ·  #%d", g.stats.Rank)
	}
	drawLabel(screen, right, protocol.ScreenW-pad-len(right)*7, topBarH/2+5, colAccent)
}
