package engine

import (
	"math"

	"github.com/vovakirdan/deadzone/internal/core"
)

// Standard-mapping button indices.
const (
	ButtonA      = 0
	ButtonB      = 1
	ButtonX      = 2
	ButtonLB     = 4
	ButtonRB     = 5
	ButtonLT     = 6
	ButtonRT     = 7
	ButtonStart  = 9
	StickDead    = 0.15
	aimThreshold = 0.1
)

// GamepadState is one poll of a controller: left stick x/y, right stick
// x/y and the pressed state of each button.
type GamepadState struct {
	Axes    [4]float64
	Buttons []bool
}

// ApplyDeadzone zeroes |v| below dz and rescales the rest to [0, 1].
func ApplyDeadzone(v, dz float64) float64 {
	if math.Abs(v) < dz {
		return 0
	}
	return math.Copysign((math.Abs(v)-dz)/(1-dz), v)
}

// Gamepad turns polled controller state into intents. Action buttons fire
// once per press; fire is held.
type Gamepad struct {
	prev []bool
}

// Normalize converts a poll into intents and remembers the buttons for
// press detection.
func (g *Gamepad) Normalize(s GamepadState) Intents {
	pressed := func(i int) bool { return i < len(s.Buttons) && s.Buttons[i] }
	just := func(i int) bool { return pressed(i) && !(i < len(g.prev) && g.prev[i]) }

	var in Intents
	in.Move = core.V(ApplyDeadzone(s.Axes[0], StickDead), ApplyDeadzone(s.Axes[1], StickDead))

	rx, ry := ApplyDeadzone(s.Axes[2], StickDead), ApplyDeadzone(s.Axes[3], StickDead)
	if math.Abs(rx) >= aimThreshold || math.Abs(ry) >= aimThreshold {
		in.AimAngle, in.AimAngleSet = math.Atan2(ry, rx), true
	}

	in.Fire = pressed(ButtonRT)
	in.Melee = just(ButtonLT) || just(ButtonB)
	in.Reload = just(ButtonX)
	in.Interact = just(ButtonA)
	in.Pause = just(ButtonStart)
	switch {
	case just(ButtonRB):
		in.Cycle = 1
	case just(ButtonLB):
		in.Cycle = -1
	}

	g.prev = append(g.prev[:0], s.Buttons...)
	return in
}
