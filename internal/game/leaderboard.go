package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/L1VER1337/block/internal/protocol"
)

const leaderboardLimit = 50

// placeholderBoard is the fixed demo board shown when the leaderboard fetch
// fails. Ordered by ascending rank, like the real response.
func placeholderBoard() []protocol.LeaderboardEntry {
	return []protocol.LeaderboardEntry{
		{UserID: "demo-1", Username: "BlockMaster", BestScore: 2840, Rank: 1},
		{UserID: "demo-2", Username: "PuzzlePro", BestScore: 2310, Rank: 2},
		{UserID: "demo-3", Username: "CubeKing", BestScore: 1985, Rank: 3},
		{UserID: "demo-4", Username: "BlastQueen", BestScore: 1620, Rank: 4},
		{UserID: "demo-5", Username: "GridRunner", BestScore: 1150, Rank: 5},
	}
}

type leaderboardPanel struct {
	api    API
	load   *loader[[]protocol.LeaderboardEntry]
	scroll int
}

func newLeaderboardPanel(api API) *leaderboardPanel {
	return &leaderboardPanel{api: api, load: newLoader[[]protocol.LeaderboardEntry]("leaderboard")}
}

func (p *leaderboardPanel) mount() {
	p.load.begin(func() ([]protocol.LeaderboardEntry, error) {
		return p.api.Leaderboard(leaderboardLimit)
	}, placeholderBoard())
}

func (p *leaderboardPanel) unmount() {
	p.load.reset()
	p.scroll = 0
}

func (p *leaderboardPanel) update() {
	p.load.poll()

	_, wy := ebiten.Wheel()
	if wy != 0 && p.load.done() {
		maxScroll := len(p.load.data) - p.visibleRows()
		if maxScroll < 0 {
			maxScroll = 0
		}
		p.scroll = clampInt(p.scroll-int(wy), 0, maxScroll)
	}
}

func (p *leaderboardPanel) visibleRows() int {
	return (panelArea().h - 56) / rowH
}

func (p *leaderboardPanel) draw(screen *ebiten.Image, selfID string) {
	area := panelArea()
	cx := area.x + area.w/2

	centerText(screen, "Leaderboard", cx, area.y+26, color.White)

	if !p.load.done() {
		centerText(screen, "Loading...", cx, area.y+area.h/2, colDim)
		return
	}
	if p.load.fallback {
		centerText(screen, "offline, showing demo board", cx, area.y+42, colFaint)
	}

	rows := p.load.data
	y := area.y + 56
	vis := p.visibleRows()
	for i := p.scroll; i < len(rows) && i-p.scroll < vis; i++ {
		e := rows[i]
		rowCol := color.Color(colDim)
		if e.UserID == selfID {
			rowCol = colAccent
		}
		if e.Rank <= 3 {
			fillRect(screen, rect{x: area.x + pad, y: y - 14, w: area.w - pad*2, h: rowH - 2}, colPanel)
		}
		drawLabel(screen, fmt.Sprintf("#%d", e.Rank), area.x+pad*2, y, rowCol)
		drawAvatarTile(screen, area.x+pad*2+44, y-13, 16, e.Username)
		drawLabel(screen, trim(e.Username, 24), area.x+pad*2+68, y, rowCol)

		score := fmt.Sprintf("%d", e.BestScore)
		drawLabel(screen, score, area.x+area.w-pad*2-len(score)*7, y, rowCol)
		y += rowH
	}
	if len(rows) == 0 {
		centerText(screen, "No scores yet. Be the first!", cx, area.y+area.h/2, colDim)
	}
}
