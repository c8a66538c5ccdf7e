package entity

import "github.com/vovakirdan/deadzone/internal/core"

// PowerUpKind is the effect a pickup grants.
type PowerUpKind string

const (
	PowerUpInstaKill    PowerUpKind = "insta-kill"
	PowerUpDoublePoints PowerUpKind = "double-points"
	PowerUpMaxAmmo      PowerUpKind = "max-ammo"
	PowerUpNuke         PowerUpKind = "nuke"
)

// PowerUpKinds lists the kinds a drop is drawn from uniformly.
var PowerUpKinds = []PowerUpKind{PowerUpInstaKill, PowerUpDoublePoints, PowerUpMaxAmmo, PowerUpNuke}

// Timed reports whether the kind occupies the active effect slot.
func (k PowerUpKind) Timed() bool {
	return k == PowerUpInstaKill || k == PowerUpDoublePoints
}

// Label returns the short pickup label.
func (k PowerUpKind) Label() string {
	switch k {
	case PowerUpInstaKill:
		return "INSTA"
	case PowerUpDoublePoints:
		return "2X"
	case PowerUpMaxAmmo:
		return "MAX"
	case PowerUpNuke:
		return "NUKE"
	default:
		return "?"
	}
}

// Sound returns the pickup cue.
func (k PowerUpKind) Sound() core.Sound {
	switch k {
	case PowerUpInstaKill:
		return core.SoundInstaKill
	case PowerUpDoublePoints:
		return core.SoundDoublePoints
	case PowerUpMaxAmmo:
		return core.SoundMaxAmmo
	default:
		return core.SoundNuke
	}
}

// PowerUp is a pickup lying on the map.
type PowerUp struct {
	Kind     PowerUpKind
	Pos      core.Vec
	Lifetime float64
	Expired  bool
}

// Update ticks the despawn timer.
func (p *PowerUp) Update(dt float64) {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		p.Expired = true
	}
}
