package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// comingSoonPanel is the static placeholder behind the Duels and Shop tabs.
// No network effects, no state.
type comingSoonPanel struct {
	title string
	blurb string
}

func (p comingSoonPanel) draw(screen *ebiten.Image) {
	area := panelArea()
	cx := area.x + area.w/2
	cy := area.y + area.h/2

	centerText(screen, p.title, cx, cy-20, color.White)
	centerText(screen, "Coming soon", cx, cy+4, colAccent)
	if p.blurb != "" {
		centerText(screen, p.blurb, cx, cy+28, colFaint)
	}
}
