package entity

import (
	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
)

// Bullet travels in a straight line until it leaves the map, hits a wall or
// hits its first enemy.
type Bullet struct {
	Pos    core.Vec
	Angle  float64
	Speed  float64
	Damage float64 // base damage of the weapon that fired it
	Weapon string  // weapon name, for the kill feed
}

// Update advances the bullet by dt milliseconds.
func (b *Bullet) Update(dt float64) {
	b.Pos = b.Pos.Add(core.FromAngle(b.Angle).Scale(b.Speed * dt / 1000))
}

// OutOfBounds reports whether the bullet has left a w×h map.
func (b *Bullet) OutOfBounds(w, h float64) bool {
	return b.Pos.X < 0 || b.Pos.X > w || b.Pos.Y < 0 || b.Pos.Y > h
}

// HitDamage resolves the damage dealt on impact. An active insta-kill
// overrides everything and perks are not applied on top of it.
func (b *Bullet) HitDamage(instaKill, doubleTap bool, cfg config.WeaponsConfig) float64 {
	if instaKill {
		return cfg.InstaKillDamage
	}
	if doubleTap {
		return b.Damage * cfg.DoubleTapDamage
	}
	return b.Damage
}
