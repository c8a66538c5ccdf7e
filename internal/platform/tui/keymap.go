package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/deadzone/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	// Movement
	case "w":
		return core.ActionUp, false
	case "s":
		return core.ActionDown, false
	case "a":
		return core.ActionLeft, false
	case "d":
		return core.ActionRight, false

	// Arrows aim and fire together
	case "up":
		return core.ActionAimUp, false
	case "down":
		return core.ActionAimDown, false
	case "left":
		return core.ActionAimLeft, false
	case "right":
		return core.ActionAimRight, false

	case "x":
		return core.ActionFire, false
	case "v":
		return core.ActionMelee, false
	case "r":
		return core.ActionReload, false
	case "e":
		return core.ActionInteract, false
	case " ":
		return core.ActionRoll, false
	case "g":
		return core.ActionThrowPrimary, false
	case "f":
		return core.ActionThrowSpecial, false
	case "tab":
		return core.ActionWeaponNext, false
	case "shift+tab":
		return core.ActionWeaponPrev, false
	case "1":
		return core.ActionSlot1, false
	case "2":
		return core.ActionSlot2, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// Held reports whether an action stays active while its key is held,
// as opposed to firing once per press.
func Held(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionAimUp, core.ActionAimDown, core.ActionAimLeft, core.ActionAimRight,
		core.ActionFire:
		return true
	}
	return false
}

// opposite returns the action on the other end of the same axis.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionAimUp:
		return core.ActionAimDown
	case core.ActionAimDown:
		return core.ActionAimUp
	case core.ActionAimLeft:
		return core.ActionAimRight
	case core.ActionAimRight:
		return core.ActionAimLeft
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
