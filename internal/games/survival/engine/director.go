package engine

import (
	"math"

	"github.com/vovakirdan/deadzone/internal/config"
)

// Phase is the director state.
type Phase int

const (
	// PhaseCountdown holds the first round: no spawning and no contact damage.
	PhaseCountdown Phase = iota
	// PhaseActive spawns the round budget.
	PhaseActive
	// PhaseRoundClear waits before the next round starts.
	PhaseRoundClear
	// PhaseStopped is terminal until restart.
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhaseRoundClear:
		return "round-clear"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Director drives round progression: spawn budget, spawn pacing, round
// clear detection and the delays between rounds.
type Director struct {
	cfg config.DirectorConfig

	Phase   Phase
	Round   int
	Spawned int
	ToSpawn int
	Killed  int

	spawnTimer float64
	countdown  float64
	transition float64
}

// NewDirector starts round 1 in the countdown.
func NewDirector(cfg config.DirectorConfig) *Director {
	d := &Director{cfg: cfg, Round: 1, Phase: PhaseActive}
	d.ToSpawn = d.Budget(1)
	if cfg.Countdown > 0 {
		d.Phase = PhaseCountdown
		d.countdown = cfg.Countdown
	}
	return d
}

// Budget returns how many enemies a round spawns.
func (d *Director) Budget(round int) int {
	if round <= 1 {
		return d.cfg.FirstRoundBudget
	}
	return d.cfg.BaseBudget + d.cfg.BudgetPerRound*round
}

// Interval returns the stock spawn interval for a round.
func (d *Director) Interval(round int) float64 {
	return math.Max(d.cfg.SpawnIntervalMin, d.cfg.SpawnInterval-d.cfg.SpawnIntervalStep*float64(round))
}

// Advance ticks the countdown and the round-clear delay. It returns true
// when a new round begins.
func (d *Director) Advance(dt float64) bool {
	switch d.Phase {
	case PhaseCountdown:
		d.countdown -= dt
		if d.countdown <= 0 {
			d.countdown = 0
			d.Phase = PhaseActive
		}
	case PhaseRoundClear:
		d.transition -= dt
		if d.transition <= 0 {
			d.transition = 0
			d.Round++
			d.ToSpawn = d.Budget(d.Round)
			d.Spawned = 0
			d.Killed = 0
			d.Phase = PhaseActive
			return true
		}
	}
	return false
}

// SpawnDue ticks the spawn timer and reports whether an enemy should spawn
// now. On true the timer restarts at interval.
func (d *Director) SpawnDue(dt, interval float64) bool {
	if d.Phase != PhaseActive {
		return false
	}
	d.spawnTimer -= dt
	if d.spawnTimer > 0 || d.Spawned >= d.ToSpawn {
		return false
	}
	d.spawnTimer = interval
	return true
}

// BossDue reports whether the next spawn is the round's boss.
func (d *Director) BossDue() bool {
	return d.cfg.BossEvery > 0 && d.Round%d.cfg.BossEvery == 0 && d.Spawned == 0
}

// RecordSpawn counts one spawned enemy.
func (d *Director) RecordSpawn() {
	d.Spawned++
}

// RecordKills counts n killed enemies.
func (d *Director) RecordKills(n int) {
	d.Killed += n
}

// CheckClear enters RoundClear once the budget is spawned and the roster
// is empty. It reports whether the transition happened.
func (d *Director) CheckClear(roster int) bool {
	if d.Phase != PhaseActive || d.Spawned < d.ToSpawn || roster > 0 {
		return false
	}
	d.Phase = PhaseRoundClear
	d.transition = d.cfg.Transition
	return true
}

// Stop enters the terminal state.
func (d *Director) Stop() {
	d.Phase = PhaseStopped
}

// Remaining is the zombies-left counter shown on the HUD.
func (d *Director) Remaining(roster int) int {
	return max(0, d.ToSpawn-d.Killed+roster)
}

// Countdown returns the ms left in the start countdown.
func (d *Director) Countdown() float64 { return d.countdown }

// Transition returns the ms left before the next round.
func (d *Director) Transition() float64 { return d.transition }
