package game

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/L1VER1337/block/internal/protocol"
)

var (
	colBg        = color.NRGBA{18, 18, 26, 255}
	colPanel     = color.NRGBA{32, 32, 44, 255}
	colPanelDark = color.NRGBA{26, 26, 36, 255}
	colBtn       = color.NRGBA{54, 63, 88, 255}
	colBtnActive = color.NRGBA{80, 92, 128, 255}
	colBtnMuted  = color.NRGBA{44, 44, 54, 255}
	colAccent    = color.NRGBA{240, 196, 25, 255}
	colDim       = color.NRGBA{170, 170, 185, 255}
	colFaint     = color.NRGBA{120, 120, 135, 255}
)

// panelArea is the content rect between the top and bottom bars.
func panelArea() rect {
	return rect{x: 0, y: topBarH, w: protocol.ScreenW, h: protocol.ScreenH - topBarH - menuBarH}
}

func fillRect(screen *ebiten.Image, r rect, col color.Color) {
	ebitenutil.DrawRect(screen, float64(r.x), float64(r.y), float64(r.w), float64(r.h), col)
}

func drawLabel(screen *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, col)
}

// centerText draws s centered horizontally on cx.
func centerText(screen *ebiten.Image, s string, cx, y int, col color.Color) {
	lb := text.BoundString(basicfont.Face7x13, s)
	text.Draw(screen, s, basicfont.Face7x13, cx-lb.Dx()/2, y, col)
}

func drawBtn(screen *ebiten.Image, r rect, label string, active, enabled bool) {
	col := colBtn
	if active {
		col = colBtnActive
	}
	if !enabled {
		col = colBtnMuted
	}
	fillRect(screen, r, col)

	lb := text.BoundString(basicfont.Face7x13, label)
	tx := r.x + (r.w-lb.Dx())/2
	ty := r.y + (r.h+13)/2 - 2
	txt := color.Color(color.White)
	if !enabled {
		txt = colDim
	}
	text.Draw(screen, label, basicfont.Face7x13, tx, ty, txt)
}

// drawAvatarTile draws the initial-letter stand-in used where the mini-app
// shows the Telegram photo (no image assets ship with the shell).
func drawAvatarTile(screen *ebiten.Image, x, y, size int, name string) {
	fillRect(screen, rect{x: x, y: y, w: size, h: size}, color.NRGBA{70, 70, 90, 255})
	initial := "?"
	for _, r := range strings.ToUpper(strings.TrimSpace(name)) {
		initial = string(r)
		break
	}
	centerText(screen, initial, x+size/2, y+(size+13)/2-2, color.White)
}

func trim(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
