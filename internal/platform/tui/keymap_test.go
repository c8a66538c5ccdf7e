package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/deadzone/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{runeKey("w"), core.ActionUp, false},
		{runeKey("a"), core.ActionLeft, false},
		{runeKey("s"), core.ActionDown, false},
		{runeKey("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionAimUp, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAimLeft, false},
		{runeKey("x"), core.ActionFire, false},
		{runeKey("v"), core.ActionMelee, false},
		{runeKey("r"), core.ActionReload, false},
		{runeKey("e"), core.ActionInteract, false},
		{runeKey("g"), core.ActionThrowPrimary, false},
		{runeKey("f"), core.ActionThrowSpecial, false},
		{runeKey("1"), core.ActionSlot1, false},
		{runeKey("2"), core.ActionSlot2, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionRoll, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionWeaponNext, false},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionWeaponPrev, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("p"), core.ActionPause, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.expected || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.expected, tt.quit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("h"), MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestHeldActions(t *testing.T) {
	held := []core.Action{core.ActionUp, core.ActionRight, core.ActionAimDown, core.ActionFire}
	for _, a := range held {
		if !Held(a) {
			t.Errorf("Held(%v) = false, expected true", a)
		}
	}
	once := []core.Action{core.ActionReload, core.ActionInteract, core.ActionRoll, core.ActionSlot1, core.ActionPause}
	for _, a := range once {
		if Held(a) {
			t.Errorf("Held(%v) = true, expected false", a)
		}
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := newHeldKeys()
	t0 := time.Unix(1000, 0)

	h.press(core.ActionRight, t0)

	tests := []struct {
		at       time.Duration
		expected bool
	}{
		{0, true},
		{holdInitial - time.Millisecond, true},
		{holdInitial, false},
	}
	for _, tt := range tests {
		f := core.NewInputFrame()
		h.apply(&f, t0.Add(tt.at))
		if f.Has(core.ActionRight) != tt.expected {
			t.Errorf("held at +%v = %v, expected %v", tt.at, f.Has(core.ActionRight), tt.expected)
		}
	}
}

func TestHeldKeysRepeat(t *testing.T) {
	h := newHeldKeys()
	t0 := time.Unix(1000, 0)

	h.press(core.ActionUp, t0)
	repeat := t0.Add(200 * time.Millisecond)
	h.press(core.ActionUp, repeat)

	f := core.NewInputFrame()
	h.apply(&f, repeat.Add(holdRepeat-time.Millisecond))
	if !f.Has(core.ActionUp) {
		t.Error("repeat should extend the hold")
	}

	f = core.NewInputFrame()
	h.apply(&f, repeat.Add(holdRepeat))
	if f.Has(core.ActionUp) {
		t.Error("hold should lapse one repeat window after the last repeat")
	}
}

func TestHeldKeysOpposite(t *testing.T) {
	h := newHeldKeys()
	t0 := time.Unix(1000, 0)

	h.press(core.ActionLeft, t0)
	h.press(core.ActionRight, t0.Add(10*time.Millisecond))

	f := core.NewInputFrame()
	h.apply(&f, t0.Add(20*time.Millisecond))
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("left=%v right=%v, expected only right", f.Has(core.ActionLeft), f.Has(core.ActionRight))
	}

	h.reset()
	f = core.NewInputFrame()
	h.apply(&f, t0.Add(20*time.Millisecond))
	if f.Has(core.ActionRight) {
		t.Error("reset should release every key")
	}
}
