package config

import "math"

// DifficultyManager scales zombie stats and spawn pacing with the round number.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a round. Round 1 sits
// at the initial level.
func (d *DifficultyManager) Level(round int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "round" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(round-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// HealthFactor returns the zombie health multiplier for a round.
func (d *DifficultyManager) HealthFactor(round int) float64 {
	return 1.0 + d.Level(round)*d.cfg.Scaling.HealthMultiplier
}

// DamageFactor returns the zombie damage multiplier for a round.
func (d *DifficultyManager) DamageFactor(round int) float64 {
	return 1.0 + d.Level(round)*d.cfg.Scaling.DamageMultiplier
}

// SpawnInterval shortens a base spawn interval, never below floor.
func (d *DifficultyManager) SpawnInterval(base, floor float64, round int) float64 {
	return math.Max(floor, base-d.Level(round)*d.cfg.Scaling.SpawnIntervalCut)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
