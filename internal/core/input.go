package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W - move up
	ActionDown                // S - move down
	ActionLeft                // A - move left
	ActionRight               // D - move right
	ActionAimUp               // Up arrow - aim and fire up
	ActionAimDown             // Down arrow - aim and fire down
	ActionAimLeft             // Left arrow - aim and fire left
	ActionAimRight            // Right arrow - aim and fire right
	ActionFire                // X, left mouse button - fire while held
	ActionMelee               // V, right mouse button - knife
	ActionReload              // R - reload current weapon
	ActionInteract            // E - doors, wall buys, box, vending, ammo
	ActionWeaponNext          // Tab, wheel down - next weapon
	ActionWeaponPrev          // Shift+Tab, wheel up - previous weapon
	ActionSlot1               // 1 - first weapon slot, swap prompt slot 1
	ActionSlot2               // 2 - second weapon slot, swap prompt slot 2
	ActionThrowPrimary        // G - frag or molotov
	ActionThrowSpecial        // F - stun or disco
	ActionRoll                // Space - dodge roll
	ActionConfirm             // Enter - confirm selection in menu
	ActionBack                // B, Escape - go back / cancel prompt
	ActionRestart             // R key - restart game after game over
	ActionQuit                // Q, Ctrl+C - exit game/session
	ActionPause               // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionFire:
		return "Fire"
	case ActionMelee:
		return "Melee"
	case ActionReload:
		return "Reload"
	case ActionInteract:
		return "Interact"
	case ActionWeaponNext:
		return "WeaponNext"
	case ActionWeaponPrev:
		return "WeaponPrev"
	case ActionSlot1:
		return "Slot1"
	case ActionSlot2:
		return "Slot2"
	case ActionThrowPrimary:
		return "ThrowPrimary"
	case ActionThrowSpecial:
		return "ThrowSpecial"
	case ActionRoll:
		return "Roll"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is the last known mouse position in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer carries mouse aim. It survives Clear so aim persists between
	// mouse motion events.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Axis returns the movement direction built from the four move actions.
// Opposing actions cancel out.
func (f InputFrame) Axis() (dx, dy float64) {
	if f.Has(ActionLeft) {
		dx--
	}
	if f.Has(ActionRight) {
		dx++
	}
	if f.Has(ActionUp) {
		dy--
	}
	if f.Has(ActionDown) {
		dy++
	}
	return dx, dy
}

// AimAxis returns the direction built from the four aim actions.
func (f InputFrame) AimAxis() (dx, dy float64) {
	if f.Has(ActionAimLeft) {
		dx--
	}
	if f.Has(ActionAimRight) {
		dx++
	}
	if f.Has(ActionAimUp) {
		dy--
	}
	if f.Has(ActionAimDown) {
		dy++
	}
	return dx, dy
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
