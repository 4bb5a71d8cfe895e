package game

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/L1VER1337/block/internal/protocol"
)

const recentScoresLimit = 5

// profilePanel renders the merged stats projection plus the recent-score
// list, and owns the two profile actions: copy user id and rename.
type profilePanel struct {
	api    API
	recent *loader[[]protocol.GameScore]
	userID string

	editing   bool
	nameInput string
	copiedAt  time.Time

	// onRename persists the new display name and re-syncs the user.
	onRename func(username string)

	editBtn, copyBtn rect
}

func newProfilePanel(api API, onRename func(string)) *profilePanel {
	return &profilePanel{
		api:      api,
		recent:   newLoader[[]protocol.GameScore]("recent scores"),
		onRename: onRename,
	}
}

func (p *profilePanel) mount(userID string) {
	p.userID = userID
	if isLocalID(userID) {
		// offline user has no server-side history
		return
	}
	p.recent.begin(func() ([]protocol.GameScore, error) {
		return p.api.UserScores(userID, recentScoresLimit)
	}, nil)
}

func (p *profilePanel) unmount() {
	p.recent.reset()
	p.editing = false
	p.nameInput = ""
}

func (p *profilePanel) update(current protocol.User) {
	p.recent.poll()

	if p.editing {
		for _, k := range inpututil.AppendJustPressedKeys(nil) {
			switch k {
			case ebiten.KeyEnter:
				name := strings.TrimSpace(p.nameInput)
				p.editing = false
				if name != "" && name != current.Username && p.onRename != nil {
					p.onRename(name)
				}
			case ebiten.KeyEscape:
				p.editing = false
			case ebiten.KeyBackspace:
				if len(p.nameInput) > 0 {
					p.nameInput = p.nameInput[:len(p.nameInput)-1]
				}
			default:
				s := k.String()
				if len(s) == 1 && len(p.nameInput) < 24 {
					p.nameInput += strings.ToLower(s)
				}
			}
		}
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		switch {
		case p.editBtn.hit(mx, my) && !isLocalID(current.ID):
			p.editing = true
			p.nameInput = current.Username
		case p.copyBtn.hit(mx, my):
			if err := clipboard.WriteAll(current.ID); err != nil {
				log.Printf("profile: clipboard copy failed: %v", err)
			} else {
				p.copiedAt = time.Now()
			}
		}
	}
}

func (p *profilePanel) draw(screen *ebiten.Image, user protocol.User, stats UserStats) {
	area := panelArea()
	x := area.x + pad*2

	// header card
	card := rect{x: x, y: area.y + pad*2, w: area.w - pad*4, h: 96}
	fillRect(screen, card, colPanel)
	drawAvatarTile(screen, card.x+pad*2, card.y+pad*2, 48, stats.Username)

	nameX := card.x + pad*2 + 48 + pad*2
	if p.editing {
		fillRect(screen, rect{x: nameX, y: card.y + pad*2, w: 180, h: 18}, colPanelDark)
		drawLabel(screen, p.nameInput+"_", nameX+4, card.y+pad*2+13, color.White)
		drawLabel(screen, "Enter to save, Esc to cancel", nameX, card.y+pad*2+34, colFaint)
	} else {
		drawLabel(screen, trim(stats.Username, 22), nameX, card.y+pad*2+13, color.White)
		rankLine := "Rank: unranked"
		if stats.Rank > 0 {
			rankLine = fmt.Sprintf("Rank: #%d", stats.Rank)
		}
		drawLabel(screen, rankLine, nameX, card.y+pad*2+34, colAccent)
	}

	p.editBtn = rect{x: card.x + card.w - 68 - pad, y: card.y + pad, w: 68, h: 24}
	drawBtn(screen, p.editBtn, "Rename", p.editing, !p.editing && !isLocalID(user.ID))

	copyLabel := "Copy ID"
	if time.Since(p.copiedAt) < 2*time.Second {
		copyLabel = "Copied!"
	}
	p.copyBtn = rect{x: card.x + card.w - 68 - pad, y: card.y + card.h - 24 - pad, w: 68, h: 24}
	drawBtn(screen, p.copyBtn, copyLabel, false, true)

	// stats block
	sy := card.y + card.h + pad*2
	statLines := []string{
		fmt.Sprintf("Best score    %d", stats.BestScore),
		fmt.Sprintf("Games played  %d", stats.GamesPlayed),
		fmt.Sprintf("Total score   %d", stats.TotalScore),
	}
	fillRect(screen, rect{x: x, y: sy, w: area.w - pad*4, h: len(statLines)*rowH + pad*2}, colPanel)
	for i, line := range statLines {
		drawLabel(screen, line, x+pad*2, sy+pad+13+i*rowH, colDim)
	}

	// recent scores
	ry := sy + len(statLines)*rowH + pad*4
	drawLabel(screen, "Recent games", x, ry+13, color.White)
	ry += rowH + pad
	switch {
	case isLocalID(user.ID):
		drawLabel(screen, "offline, no history", x+pad, ry+13, colFaint)
	case p.recent.pending():
		drawLabel(screen, "Loading...", x+pad, ry+13, colDim)
	case p.recent.done() && len(p.recent.data) == 0:
		drawLabel(screen, "No games yet", x+pad, ry+13, colFaint)
	default:
		for i, s := range p.recent.data {
			line := fmt.Sprintf("%d pts", s.Score)
			if s.GameDuration > 0 {
				line += fmt.Sprintf("  ·  %02d:%02d", s.GameDuration/60, s.GameDuration%60)
			}
			drawLabel(screen, line, x+pad, ry+13+i*rowH, colDim)
		}
	}
}
