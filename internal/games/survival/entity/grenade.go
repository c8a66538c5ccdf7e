package entity

import (
	"math"

	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
)

// GrenadeKind identifies a throwable and its explosion profile.
type GrenadeKind string

const (
	GrenadeFrag    GrenadeKind = config.GrenadeFrag
	GrenadeStun    GrenadeKind = config.GrenadeStun
	GrenadeMolotov GrenadeKind = config.GrenadeMolotov
	GrenadeDisco   GrenadeKind = config.GrenadeDisco
)

// GrenadeKinds lists every throwable in HUD order.
var GrenadeKinds = []GrenadeKind{GrenadeFrag, GrenadeStun, GrenadeMolotov, GrenadeDisco}

// Sound returns the explosion cue for the kind.
func (k GrenadeKind) Sound() core.Sound {
	switch k {
	case GrenadeFrag:
		return core.SoundFrag
	case GrenadeMolotov:
		return core.SoundMolotov
	case GrenadeDisco:
		return core.SoundDisco
	default:
		return core.SoundStun
	}
}

// Grenade flies from its start to a target and then explodes. It only
// reports the explosion; effects are applied by the engine.
type Grenade struct {
	Kind     GrenadeKind
	Start    core.Vec
	Pos      core.Vec
	Target   core.Vec
	Timer    float64 // ms until impact
	Travel   float64
	Arc      float64
	Linear   bool
	Exploded bool
}

// NewGrenade creates a grenade using the configured flight parameters.
func NewGrenade(kind GrenadeKind, from, to core.Vec, cfg config.GrenadeConfig) *Grenade {
	return &Grenade{
		Kind:   kind,
		Start:  from,
		Pos:    from,
		Target: to,
		Timer:  cfg.TravelTime,
		Travel: cfg.TravelTime,
		Arc:    cfg.ArcHeight,
		Linear: cfg.Interpolation == config.InterpolationLinear,
	}
}

// Update advances the flight and reports whether the grenade exploded.
//
// The default step moves the grenade by (target - pos) * dt/timeRemaining,
// an exponential approach. Linear mode places it on the straight segment
// at the elapsed fraction of the travel time.
func (g *Grenade) Update(dt float64) bool {
	if g.Exploded {
		return true
	}

	g.Timer -= dt
	if g.Timer <= 0 {
		g.Timer = 0
		g.Pos = g.Target
		g.Exploded = true
		return true
	}

	if g.Linear {
		g.Pos = g.Start.Lerp(g.Target, g.Progress())
		return false
	}
	step := math.Min(1, dt/g.Timer)
	g.Pos = g.Pos.Add(g.Target.Sub(g.Pos).Scale(step))
	return false
}

// Progress returns the elapsed fraction of the flight in [0, 1].
func (g *Grenade) Progress() float64 {
	if g.Travel <= 0 {
		return 1
	}
	return core.ClampF(1-g.Timer/g.Travel, 0, 1)
}

// Height returns the visual arc height above the ground track.
func (g *Grenade) Height() float64 {
	return math.Sin(g.Progress()*math.Pi) * g.Arc
}

// Falloff returns the damage an explosion of the given radius and base
// damage deals at distance d: D × (1 − d/R) inside the radius, else zero.
func Falloff(damage, radius, d float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	return damage * (1 - d/radius)
}
