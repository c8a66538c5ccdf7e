package entity

import (
	"github.com/vovakirdan/deadzone/internal/config"
	"github.com/vovakirdan/deadzone/internal/core"
)

// walls is a Collider made of boxes.
type walls []core.Box

func (w walls) IsWall(p core.Vec) bool {
	for _, b := range w {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// fixedRand always returns the same values.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int   { return r.n % n }
func (r fixedRand) Float64() float64 { return r.f }

func newTestPlayer() *Player {
	cfg := config.DefaultSurvivalConfig()
	return NewPlayer(core.V(1200, 1200), CharacterDefault, cfg.Player, cfg.Weapons)
}
