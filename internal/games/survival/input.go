package survival

import (
	"math"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/games/survival/engine"
)

// intents translates a platform input frame. Arrow keys aim and fire in
// one motion; otherwise the mouse pointer aims through the camera.
func (g *Game) intents(in core.InputFrame) engine.Intents {
	var it engine.Intents

	dx, dy := in.Axis()
	it.Move = core.V(dx, dy)

	if ax, ay := in.AimAxis(); ax != 0 || ay != 0 {
		it.AimAngle = math.Atan2(ay, ax)
		it.AimAngleSet = true
		it.Fire = true
	} else if in.Pointer.Valid {
		it.Aim = g.camera.ToWorld(in.Pointer.X, in.Pointer.Y)
		it.AimSet = true
	}

	it.Fire = it.Fire || in.Has(core.ActionFire)
	it.Melee = in.Has(core.ActionMelee)
	it.Reload = in.Has(core.ActionReload)
	it.Interact = in.Has(core.ActionInteract)
	it.Roll = in.Has(core.ActionRoll)
	it.Pause = in.Has(core.ActionPause)

	pending := g.eng.PendingSwap() != nil
	slot := 0
	switch {
	case in.Has(core.ActionSlot1):
		slot = 1
	case in.Has(core.ActionSlot2):
		slot = 2
	}
	if pending {
		it.SwapSlot = slot
	} else {
		it.Slot = slot
	}

	switch {
	case in.Has(core.ActionWeaponNext):
		it.Cycle = 1
	case in.Has(core.ActionWeaponPrev):
		it.Cycle = -1
	}

	p := g.eng.Player()
	switch {
	case in.Has(core.ActionThrowPrimary):
		it.Throw = p.PrimaryGrenade()
	case in.Has(core.ActionThrowSpecial):
		it.Throw = p.SpecialGrenade()
	}

	// Back closes an open swap prompt, otherwise it pauses.
	if in.Has(core.ActionBack) {
		if pending {
			it.SwapCancel = true
		} else {
			it.Pause = true
		}
	}
	return it
}
