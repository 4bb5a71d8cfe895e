package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// GameOverMarker is the terminal text the embedded game renders when a run
// ends. The poll fallback scans the surface snapshot for it.
const GameOverMarker = "GAME OVER"

// Surface is the embedded game the shell hosts (the real game runs on an
// external embedded page). The shell never computes a score; the surface
// reports it.
type Surface interface {
	// Begin starts a fresh run.
	Begin()
	// Halt abandons the current run, if any.
	Halt()
	// Snapshot returns the surface's rendered text. Used by the poll
	// fallback to spot GameOverMarker.
	Snapshot() string
	// Score returns the final score. Valid once the run has ended.
	Score() int
}

// Notifier is implemented by surfaces that can push completion instead of
// being polled for the game-over marker. Preferred when available.
type Notifier interface {
	NotifyGameOver(fn func(score int))
}

// DemoSurface stands in for the embedded Block Blast page. Its score is a
// placeholder random value pending integration with the real game's score
// reporting; nothing here is scoring logic.
type DemoSurface struct {
	mu        sync.Mutex
	running   bool
	over      bool
	score     int
	startedAt time.Time
	fn        func(score int)
}

func NewDemoSurface() *DemoSurface { return &DemoSurface{} }

func (s *DemoSurface) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
	s.over = false
	s.score = 0
	s.startedAt = time.Now()
}

func (s *DemoSurface) Halt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.over = false
}

// Finish ends the demo run. The desktop shell exposes it as a button; the
// real surface ends runs on its own.
func (s *DemoSurface) Finish() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.over = true
	s.score = 100 + rand.Intn(900) // placeholder until the real game reports
	fn := s.fn
	score := s.score
	s.mu.Unlock()

	if fn != nil {
		fn(score)
	}
}

func (s *DemoSurface) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.over:
		return fmt.Sprintf("%s\nScore: %d", GameOverMarker, s.score)
	case s.running:
		return fmt.Sprintf("Playing... %ds", int(time.Since(s.startedAt).Seconds()))
	default:
		return "Block Blast"
	}
}

func (s *DemoSurface) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *DemoSurface) NotifyGameOver(fn func(score int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
}
