//go:build !android

package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/L1VER1337/block/internal/protocol"
)

func init() {
	ebiten.SetWindowSize(protocol.ScreenW, protocol.ScreenH)
	ebiten.SetWindowTitle(protocol.GameName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(320, 560, -1, -1)
}
