package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/L1VER1337/block/internal/protocol"
)

// pollInterval is the cadence of the game-over marker poll, the interop
// shim for surfaces that cannot push completion.
const pollInterval = 500 * time.Millisecond

// gamePanel drives one play session: Idle -> Playing -> Over -> Playing.
// The score is whatever the embedded surface reports; the shell only owns
// the lifecycle and the submit-on-end side effect.
type gamePanel struct {
	surface Surface
	pushed  bool // surface pushes completion; marker poll stays off

	playing bool
	over    bool
	score   int

	startedAt time.Time
	duration  time.Duration

	lastPoll time.Time
	overCh   chan int

	// submit reports one finished run; fire-and-forget, called exactly
	// once per session end.
	submit func(score int, duration time.Duration)

	playBtn, finishBtn, againBtn rect
}

func newGamePanel(surface Surface, submit func(int, time.Duration)) *gamePanel {
	p := &gamePanel{
		surface: surface,
		submit:  submit,
		overCh:  make(chan int, 1),
	}
	if n, ok := surface.(Notifier); ok {
		p.pushed = true
		n.NotifyGameOver(func(score int) {
			select {
			case p.overCh <- score:
			default:
			}
		})
	}
	return p
}

// start begins a session. Only reachable from Idle or Over; a start while
// Playing is a no-op.
func (p *gamePanel) start() {
	if p.playing {
		return
	}
	// drop any completion left over from an abandoned run
	select {
	case <-p.overCh:
	default:
	}
	p.playing = true
	p.over = false
	p.score = 0
	p.startedAt = time.Now()
	p.lastPoll = time.Time{}
	p.surface.Begin()
}

// finish moves Playing -> Over with the surface-reported score and fires
// the single submission attempt.
func (p *gamePanel) finish(score int) {
	if !p.playing {
		return
	}
	p.playing = false
	p.over = true
	p.score = score
	p.duration = time.Since(p.startedAt)
	if p.submit != nil {
		p.submit(score, p.duration)
	}
}

func (p *gamePanel) mount() {}

// unmount tears the session down so no poll or run survives a tab switch.
func (p *gamePanel) unmount() {
	if p.playing {
		p.surface.Halt()
	}
	p.playing = false
	p.over = false
	p.score = 0
}

// step advances the session: drains the push channel and runs the marker
// poll. Input handling lives in update so step stays headless.
func (p *gamePanel) step() {
	// Push path: completion reported by the surface callback.
	select {
	case s := <-p.overCh:
		p.finish(s)
	default:
	}

	// Poll path: scan the rendered surface for the terminal marker. Only
	// runs while Playing and only for surfaces without a push callback.
	if p.playing && !p.pushed && time.Since(p.lastPoll) >= pollInterval {
		p.lastPoll = time.Now()
		if strings.Contains(p.surface.Snapshot(), GameOverMarker) {
			p.finish(p.surface.Score())
		}
	}
}

func (p *gamePanel) update() {
	p.step()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		switch {
		case !p.playing && !p.over && p.playBtn.hit(mx, my):
			p.start()
		case p.playing && p.finishBtn.hit(mx, my):
			// The demo surface has no gameplay of its own; the button
			// stands in for the embedded game ending a run.
			if ds, ok := p.surface.(*DemoSurface); ok {
				ds.Finish()
			}
		case p.over && p.againBtn.hit(mx, my):
			p.start()
		}
	}
}

func (p *gamePanel) draw(screen *ebiten.Image, stats UserStats) {
	area := panelArea()
	cx := area.x + area.w/2

	// embedded surface frame
	frame := rect{x: area.x + pad*2, y: area.y + pad*2, w: area.w - pad*4, h: area.h - 140}
	fillRect(screen, frame, colPanelDark)

	switch {
	case p.playing:
		elapsed := int(time.Since(p.startedAt).Seconds())
		centerText(screen, fmt.Sprintf("Playing %02d:%02d", elapsed/60, elapsed%60),
			cx, frame.y+28, color.White)
		for i, line := range strings.Split(p.surface.Snapshot(), "\n") {
			centerText(screen, line, cx, frame.y+60+i*rowH, colDim)
		}

		p.finishBtn = rect{x: cx - btnW/2, y: frame.y + frame.h - btnH - pad*2, w: btnW, h: btnH}
		drawBtn(screen, p.finishBtn, "End run", false, true)
		p.playBtn, p.againBtn = rect{}, rect{}

	case p.over:
		centerText(screen, GameOverMarker, cx, frame.y+frame.h/2-40, colAccent)
		centerText(screen, fmt.Sprintf("Score: %d", p.score), cx, frame.y+frame.h/2-12, color.White)
		dur := int(p.duration.Seconds())
		centerText(screen, fmt.Sprintf("Time: %02d:%02d", dur/60, dur%60), cx, frame.y+frame.h/2+10, colDim)

		p.againBtn = rect{x: cx - btnW/2, y: frame.y + frame.h - btnH - pad*2, w: btnW, h: btnH}
		drawBtn(screen, p.againBtn, "Play again", false, true)
		p.playBtn, p.finishBtn = rect{}, rect{}

	default: // idle
		centerText(screen, protocol.GameName, cx, frame.y+frame.h/2-28, color.White)
		centerText(screen, "Clear lines, chase the top of the board", cx, frame.y+frame.h/2-4, colDim)

		p.playBtn = rect{x: cx - btnW/2, y: frame.y + frame.h - btnH - pad*2, w: btnW, h: btnH}
		drawBtn(screen, p.playBtn, "Play", false, true)
		p.finishBtn, p.againBtn = rect{}, rect{}
	}

	// footer: session-independent stats
	fy := area.y + area.h - 40
	centerText(screen, fmt.Sprintf("Best %d   ·   Games %d", stats.BestScore, stats.GamesPlayed),
		cx, fy, colDim)
}
