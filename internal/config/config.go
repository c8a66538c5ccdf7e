// Package config provides YAML-based configuration loading and difficulty
// management for the survival engine. All durations are in milliseconds,
// distances in world units and speeds in world units per second.
package config

// SurvivalConfig contains all tuning for the survival engine.
type SurvivalConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	Zombie     ZombieConfig     `yaml:"zombie"`
	Director   DirectorConfig   `yaml:"director"`
	Economy    EconomyConfig    `yaml:"economy"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Grenades   GrenadeConfig    `yaml:"grenades"`
	Feed       FeedConfig       `yaml:"feed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines movement, health and timer parameters for the player.
type PlayerConfig struct {
	Radius          float64 `yaml:"radius"`
	MaxHealth       float64 `yaml:"max_health"`
	Speed           float64 `yaml:"speed"`
	Acceleration    float64 `yaml:"acceleration"`
	Friction        float64 `yaml:"friction"`
	RegenDelay      float64 `yaml:"regen_delay"`
	RegenRate       float64 `yaml:"regen_rate"` // health per second
	RollDuration    float64 `yaml:"roll_duration"`
	RollCooldown    float64 `yaml:"roll_cooldown"`
	RollSpeedFactor float64 `yaml:"roll_speed_factor"`
	KnifeDuration   float64 `yaml:"knife_duration"`
	GrenadeCap      int     `yaml:"grenade_cap"`
	PoisonDamage    float64 `yaml:"poison_damage"`
	PoisonInterval  float64 `yaml:"poison_interval"`
}

// WeaponsConfig defines bullets and the knife.
type WeaponsConfig struct {
	BulletSpeed     float64 `yaml:"bullet_speed"`
	MuzzleOffset    float64 `yaml:"muzzle_offset"`
	KnifeDamage     float64 `yaml:"knife_damage"`
	KnifeRange      float64 `yaml:"knife_range"`
	InstaKillDamage float64 `yaml:"insta_kill_damage"`
	DoubleTapDamage float64 `yaml:"double_tap_damage"` // damage multiplier
	DoubleTapRate   float64 `yaml:"double_tap_rate"`   // fire interval multiplier
}

// ZombieConfig defines per-round enemy stat scaling and variants.
type ZombieConfig struct {
	Radius             float64 `yaml:"radius"`
	BaseHealth         float64 `yaml:"base_health"`
	HealthPerRound     float64 `yaml:"health_per_round"`
	BaseSpeed          float64 `yaml:"base_speed"`
	SpeedPerRound      float64 `yaml:"speed_per_round"`
	MaxSpeedBonus      float64 `yaml:"max_speed_bonus"`
	BaseDamage         float64 `yaml:"base_damage"`
	DamagePerRound     float64 `yaml:"damage_per_round"`
	AttackRate         float64 `yaml:"attack_rate"`
	BossRadius         float64 `yaml:"boss_radius"`
	BossHealth         float64 `yaml:"boss_health"`
	BossHealthPerRound float64 `yaml:"boss_health_per_round"`
	BossSpeed          float64 `yaml:"boss_speed"`
	BossSpeedPerRound  float64 `yaml:"boss_speed_per_round"`
	BossDamage         float64 `yaml:"boss_damage"`
	ExploderChance     float64 `yaml:"exploder_chance"`
	ExploderMinRound   int     `yaml:"exploder_min_round"` // exclusive
	ExploderRadius     float64 `yaml:"exploder_radius"`
	ExploderDamage     float64 `yaml:"exploder_damage"`
	ToxicChance        float64 `yaml:"toxic_chance"`
	ToxicMinRound      int     `yaml:"toxic_min_round"` // exclusive
	ToxicDuration      float64 `yaml:"toxic_duration"`
	BurnTickDamage     float64 `yaml:"burn_tick_damage"`
	BurnTickInterval   float64 `yaml:"burn_tick_interval"`
	HealthScale        float64 `yaml:"health_scale"`
	DamageScale        float64 `yaml:"damage_scale"`
}

// DirectorConfig defines round pacing.
type DirectorConfig struct {
	Countdown         float64 `yaml:"countdown"`
	Transition        float64 `yaml:"transition"`
	FirstRoundBudget  int     `yaml:"first_round_budget"`
	BaseBudget        int     `yaml:"base_budget"`
	BudgetPerRound    int     `yaml:"budget_per_round"`
	SpawnInterval     float64 `yaml:"spawn_interval"`
	SpawnIntervalStep float64 `yaml:"spawn_interval_step"`
	SpawnIntervalMin  float64 `yaml:"spawn_interval_min"`
	BossEvery         int     `yaml:"boss_every"`
	MaxFrame          float64 `yaml:"max_frame"`
}

// EconomyConfig defines point rewards and fixed prices.
type EconomyConfig struct {
	StartingPoints int `yaml:"starting_points"`
	KillPoints     int `yaml:"kill_points"`
	BossKillPoints int `yaml:"boss_kill_points"`
	NukePoints     int `yaml:"nuke_points"`
	MysteryBoxCost int `yaml:"mystery_box_cost"`
	BoxMinUses     int `yaml:"box_min_uses"`
	BoxMaxUses     int `yaml:"box_max_uses"`
}

// PowerUpConfig defines drop and effect parameters.
type PowerUpConfig struct {
	DropChance   float64 `yaml:"drop_chance"`
	Lifetime     float64 `yaml:"lifetime"`
	Duration     float64 `yaml:"duration"`
	PickupRadius float64 `yaml:"pickup_radius"`
}

// GrenadeConfig defines throwables. Interpolation is "decay" or "linear".
type GrenadeConfig struct {
	TravelTime    float64                   `yaml:"travel_time"`
	ArcHeight     float64                   `yaml:"arc_height"`
	ThrowDistance float64                   `yaml:"throw_distance"`
	Interpolation string                    `yaml:"interpolation"`
	ExplosionTime float64                   `yaml:"explosion_time"`
	Profiles      map[string]GrenadeProfile `yaml:"profiles"`
}

// GrenadeProfile is the explosion profile of one throwable kind.
type GrenadeProfile struct {
	Radius float64 `yaml:"radius"`
	Damage float64 `yaml:"damage"`
	Stun   float64 `yaml:"stun"`
	Burn   float64 `yaml:"burn"`
	Shake  float64 `yaml:"shake"`
}

// FeedConfig defines the kill feed.
type FeedConfig struct {
	MaxEntries int     `yaml:"max_entries"`
	Lifetime   float64 `yaml:"lifetime"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = stock, 1.0 = max scaling
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round" or "none"
	MaxAt int    `yaml:"max_at"` // Round at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	HealthMultiplier float64 `yaml:"health_multiplier"`  // added to zombie health scale
	DamageMultiplier float64 `yaml:"damage_multiplier"`  // added to zombie damage scale
	SpawnIntervalCut float64 `yaml:"spawn_interval_cut"` // ms removed from the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.3
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
