package tui

import (
	"time"

	"github.com/vovakirdan/deadzone/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// held key is inferred: a press keeps its action live for a while and every
// repeat extends it. The first press gets a longer window to bridge the
// auto-repeat delay.
const (
	holdInitial = 300 * time.Millisecond
	holdRepeat  = 120 * time.Millisecond
)

// heldKeys tracks the deadline of every action whose key looks held.
type heldKeys struct {
	until map[core.Action]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{until: make(map[core.Action]time.Time)}
}

// press marks a as held from now. Pressing one end of an axis releases the
// other.
func (h *heldKeys) press(a core.Action, now time.Time) {
	window := holdInitial
	if h.active(a, now) {
		window = holdRepeat
	}
	h.until[a] = now.Add(window)
	if o := opposite(a); o != core.ActionNone {
		delete(h.until, o)
	}
}

func (h *heldKeys) active(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// apply sets every still-held action on f and forgets expired ones.
func (h *heldKeys) apply(f *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			f.Set(a)
			continue
		}
		delete(h.until, a)
	}
}

// reset releases everything.
func (h *heldKeys) reset() {
	clear(h.until)
}
