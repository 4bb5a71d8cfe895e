package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/L1VER1337/block/internal/protocol"
)

func (g *Game) drawBottomBar(screen *ebiten.Image) {
	fillRect(screen, rect{x: 0, y: protocol.ScreenH - menuBarH, w: protocol.ScreenW, h: menuBarH}, colPanel)

	g.computeBottomBarLayout()

	drawBtn(screen, g.duelsBtn, tabDuels.label(), g.activeTab == tabDuels, true)
	drawBtn(screen, g.leadersBtn, tabLeaders.label(), g.activeTab == tabLeaders, true)
	drawBtn(screen, g.gameBtn, tabGame.label(), g.activeTab == tabGame, true)
	drawBtn(screen, g.shopBtn, tabShop.label(), g.activeTab == tabShop, true)
	drawBtn(screen, g.profileBtn, tabProfile.label(), g.activeTab == tabProfile, true)
}

func (g *Game) computeBottomBarLayout() {
	type item struct {
		label string
		out   *rect
	}
	items := []item{
		{tabDuels.label(), &g.duelsBtn},
		{tabLeaders.label(), &g.leadersBtn},
		{tabGame.label(), &g.gameBtn},
		{tabShop.label(), &g.shopBtn},
		{tabProfile.label(), &g.profileBtn},
	}

	availW := protocol.ScreenW - 2*pad
	spacing := pad
	y0 := protocol.ScreenH - menuBarH + (menuBarH-btnH)/2

	basePadX := 10
	minW := 56

	widths := make([]int, len(items))
	for i, it := range items {
		tw := text.BoundString(basicfont.Face7x13, it.label).Dx()
		w := tw + basePadX*2
		if w < minW {
			w = minW
		}
		widths[i] = w
	}

	maxPer := (availW - spacing*(len(items)-1)) / len(items)
	if maxPer < minW {
		maxPer = minW
	}
	for i := range widths {
		if widths[i] > maxPer {
			widths[i] = maxPer
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	need := total + spacing*(len(items)-1)
	startX := pad + (availW-need)/2
	if startX < pad {
		startX = pad
	}

	x := startX
	for i, it := range items {
		*it.out = rect{x: x, y: y0, w: widths[i], h: btnH}
		x += widths[i] + spacing
	}
}

func (g *Game) updateBottomBar() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	switch {
	case g.duelsBtn.hit(mx, my):
		g.setTab(tabDuels)
	case g.leadersBtn.hit(mx, my):
		g.setTab(tabLeaders)
	case g.gameBtn.hit(mx, my):
		g.setTab(tabGame)
	case g.shopBtn.hit(mx, my):
		g.setTab(tabShop)
	case g.profileBtn.hit(mx, my):
		g.setTab(tabProfile)
	}
}
