package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/boxcoin/internal/core"
)

// DefaultHoldTimeout is how long a key may go without an auto-repeat
// before it counts as released. Terminals only report presses, and the
// first auto-repeat typically arrives 250-500ms after the press.
const DefaultHoldTimeout = 550 * time.Millisecond

// HoldTracker synthesises key releases for terminals, which never send
// them. A held key keeps auto-repeating; once the repeats stop for the
// timeout the key is considered released.
type HoldTracker struct {
	timeout time.Duration
	seen    map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive timeout uses
// DefaultHoldTimeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HoldTracker{
		timeout: timeout,
		seen:    make(map[core.Action]time.Time),
	}
}

// holdable reports whether releases of a matter to the game.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// Press records a press of a at now and returns the held actions it
// supersedes: pressing one direction releases the other.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.Action {
	if !holdable(a) {
		return nil
	}

	var released []core.Action
	switch a {
	case core.ActionLeft:
		released = h.drop(core.ActionRight)
	case core.ActionRight:
		released = h.drop(core.ActionLeft)
	}

	h.seen[a] = now
	return released
}

func (h *HoldTracker) drop(a core.Action) []core.Action {
	if _, ok := h.seen[a]; !ok {
		return nil
	}
	delete(h.seen, a)
	return []core.Action{a}
}

// Held reports whether a is currently considered held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.seen[a]
	return ok
}

// Expire returns, in action order, every held key whose last press is
// older than the timeout, and forgets them.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, last := range h.seen {
		if now.Sub(last) >= h.timeout {
			released = append(released, a)
		}
	}
	for _, a := range released {
		delete(h.seen, a)
	}

	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.seen)
}
