package engine

import (
	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/entity"
)

// Intents is the normalized input for one tick. Keyboard, mouse and gamepad
// producers all reduce to this shape.
type Intents struct {
	Move core.Vec

	// Aim is a world point; AimAngle wins when both are set.
	Aim         core.Vec
	AimSet      bool
	AimAngle    float64
	AimAngleSet bool

	Fire     bool // held
	Melee    bool
	Reload   bool
	Interact bool
	Roll     bool
	Pause    bool

	Slot  int // 1-based weapon slot to select, 0 for none
	Cycle int // +1 next weapon, -1 previous

	Throw entity.GrenadeKind // empty for none

	SwapSlot   int // 1-based slot answering a swap prompt, 0 for none
	SwapCancel bool
}

// Merge combines two intent sources. Movement adds up, triggers OR
// together and o's aim and selections override in's when set.
func (in Intents) Merge(o Intents) Intents {
	out := in
	out.Move = in.Move.Add(o.Move)
	if o.AimSet {
		out.Aim, out.AimSet = o.Aim, true
	}
	if o.AimAngleSet {
		out.AimAngle, out.AimAngleSet = o.AimAngle, true
	}
	out.Fire = in.Fire || o.Fire
	out.Melee = in.Melee || o.Melee
	out.Reload = in.Reload || o.Reload
	out.Interact = in.Interact || o.Interact
	out.Roll = in.Roll || o.Roll
	out.Pause = in.Pause || o.Pause
	if o.Slot != 0 {
		out.Slot = o.Slot
	}
	if o.Cycle != 0 {
		out.Cycle = o.Cycle
	}
	if o.Throw != "" {
		out.Throw = o.Throw
	}
	if o.SwapSlot != 0 {
		out.SwapSlot = o.SwapSlot
	}
	out.SwapCancel = in.SwapCancel || o.SwapCancel
	return out
}
