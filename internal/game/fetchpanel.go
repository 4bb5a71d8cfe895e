package game

import "log"

type loadState int

const (
	loadIdle loadState = iota
	loadPending
	loadDone
)

type loadOutcome[T any] struct {
	gen      int
	data     T
	fallback bool
}

// loader is the shared fetch-with-fallback shape behind every read-only
// panel. Mount starts exactly one read; a failure substitutes the
// placeholder instead of surfacing an error. Results arrive over a channel
// drained from Update, so all mutation happens on the game loop.
type loader[T any] struct {
	name string
	st   loadState
	gen  int // bumped on reset so stale results are dropped
	ch   chan loadOutcome[T]

	data     T
	fallback bool // data is the placeholder, not a server response
}

func newLoader[T any](name string) *loader[T] {
	return &loader[T]{name: name, ch: make(chan loadOutcome[T], 1)}
}

// begin starts the read unless one already ran for this mount.
func (l *loader[T]) begin(fetch func() (T, error), placeholder T) {
	if l.st != loadIdle {
		return
	}
	l.st = loadPending
	gen := l.gen
	go func() {
		v, err := fetch()
		if err != nil {
			log.Printf("%s: fetch failed, using placeholder: %v", l.name, err)
			l.ch <- loadOutcome[T]{gen: gen, data: placeholder, fallback: true}
			return
		}
		l.ch <- loadOutcome[T]{gen: gen, data: v}
	}()
}

// poll drains the completion channel; call once per Update while mounted.
func (l *loader[T]) poll() {
	select {
	case o := <-l.ch:
		if o.gen != l.gen || l.st != loadPending {
			return // result from a previous mount
		}
		l.st = loadDone
		l.data = o.data
		l.fallback = o.fallback
	default:
	}
}

// reset returns the loader to idle; the next mount fetches again.
func (l *loader[T]) reset() {
	l.gen++
	l.st = loadIdle
	var zero T
	l.data = zero
	l.fallback = false
}

func (l *loader[T]) pending() bool { return l.st == loadPending }
func (l *loader[T]) done() bool    { return l.st == loadDone }
