package game

import (
	"errors"
	"testing"
)

func TestLoaderDeliversFetchedData(t *testing.T) {
	l := newLoader[[]int]("test")
	l.begin(func() ([]int, error) { return []int{1, 2, 3}, nil }, []int{9})

	waitFor(t, func() bool { l.poll(); return l.done() })
	if l.fallback {
		t.Fatalf("successful fetch flagged as fallback")
	}
	if len(l.data) != 3 || l.data[0] != 1 {
		t.Fatalf("data = %v", l.data)
	}
}

func TestLoaderSubstitutesPlaceholderOnFailure(t *testing.T) {
	l := newLoader[[]int]("test")
	l.begin(func() ([]int, error) { return nil, errors.New("boom") }, []int{7, 8})

	waitFor(t, func() bool { l.poll(); return l.done() })
	if !l.fallback {
		t.Fatalf("failed fetch must be flagged as fallback")
	}
	if len(l.data) != 2 || l.data[0] != 7 {
		t.Fatalf("placeholder not applied: %v", l.data)
	}
}

func TestLoaderBeginIsSingleShotPerMount(t *testing.T) {
	calls := 0
	l := newLoader[int]("test")
	fetch := func() (int, error) { calls++; return calls, nil }

	l.begin(fetch, 0)
	l.begin(fetch, 0) // second begin on the same mount: ignored
	waitFor(t, func() bool { l.poll(); return l.done() })
	if l.data != 1 {
		t.Fatalf("fetch ran %d times for one mount", l.data)
	}

	l.reset()
	l.begin(fetch, 0)
	waitFor(t, func() bool { l.poll(); return l.done() })
	if l.data != 2 {
		t.Fatalf("remount must fetch again, got %d", l.data)
	}
}

func TestLoaderDropsStaleResultAfterReset(t *testing.T) {
	release := make(chan struct{})
	l := newLoader[int]("test")
	l.begin(func() (int, error) { <-release; return 42, nil }, 0)

	l.reset() // unmount while the fetch is in flight
	close(release)

	l.begin(func() (int, error) { return 7, nil }, 0)
	waitFor(t, func() bool { l.poll(); return l.done() })
	if l.data != 7 {
		t.Fatalf("stale result leaked into the new mount: %d", l.data)
	}
}
