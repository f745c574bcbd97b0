package boxcoin

import (
	"sort"
	"time"
)

// EventKind identifies a repeating timed event.
type EventKind int

const (
	EventSpawnCoin    EventKind = iota // drop a new coin
	EventPassiveScore                  // survival point
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventSpawnCoin:
		return "spawn-coin"
	case EventPassiveScore:
		return "passive-score"
	default:
		return "unknown"
	}
}

type timer struct {
	kind     EventKind
	next     time.Duration
	interval time.Duration
}

// Firing is one occurrence of a timer.
type Firing struct {
	Kind EventKind
	At   time.Duration
}

// Scheduler holds repeating events keyed to simulated time. It is polled
// once per frame; nothing fires on its own.
type Scheduler struct {
	timers []*timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers kind to fire first at first and then every interval.
// Registering a kind again replaces the previous timer.
func (s *Scheduler) Every(kind EventKind, first, interval time.Duration) {
	s.Cancel(kind)
	if interval <= 0 {
		return
	}
	s.timers = append(s.timers, &timer{kind: kind, next: first, interval: interval})
}

// Cancel removes the timer for kind, if any.
func (s *Scheduler) Cancel(kind EventKind) {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.kind != kind {
			kept = append(kept, t)
		}
	}
	s.timers = kept
}

// CancelAll removes every timer.
func (s *Scheduler) CancelAll() {
	s.timers = nil
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Next returns when kind fires next.
func (s *Scheduler) Next(kind EventKind) (time.Duration, bool) {
	for _, t := range s.timers {
		if t.kind == kind {
			return t.next, true
		}
	}
	return 0, false
}

// Due returns every firing at or before now, oldest first, and
// reschedules the timers past now. A long frame yields one firing per
// elapsed interval.
func (s *Scheduler) Due(now time.Duration) []Firing {
	var fired []Firing
	for _, t := range s.timers {
		for t.next <= now {
			fired = append(fired, Firing{Kind: t.kind, At: t.next})
			t.next += t.interval
		}
	}

	sort.SliceStable(fired, func(i, j int) bool {
		return fired[i].At < fired[j].At
	})
	return fired
}
