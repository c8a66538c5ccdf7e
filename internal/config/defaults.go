package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// Throwable kinds with an explosion profile.
const (
	GrenadeFrag    = "frag"
	GrenadeMolotov = "molotov"
	GrenadeStun    = "stun"
	GrenadeDisco   = "disco"
)

// Grenade interpolation modes.
const (
	InterpolationDecay  = "decay"
	InterpolationLinear = "linear"
)

// DefaultSurvivalConfig returns the default survival configuration.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Player: PlayerConfig{
			Radius:          20,
			MaxHealth:       100,
			Speed:           200,
			Acceleration:    12,
			Friction:        10,
			RegenDelay:      3000,
			RegenRate:       5,
			RollDuration:    300,
			RollCooldown:    7000,
			RollSpeedFactor: 2,
			KnifeDuration:   500,
			GrenadeCap:      1,
			PoisonDamage:    5,
			PoisonInterval:  500,
		},
		Weapons: WeaponsConfig{
			BulletSpeed:     800,
			MuzzleOffset:    30,
			KnifeDamage:     150,
			KnifeRange:      60,
			InstaKillDamage: 9999,
			DoubleTapDamage: 1.5,
			DoubleTapRate:   0.7,
		},
		Zombie: ZombieConfig{
			Radius:             18,
			BaseHealth:         50,
			HealthPerRound:     20,
			BaseSpeed:          80,
			SpeedPerRound:      5,
			MaxSpeedBonus:      100,
			BaseDamage:         15,
			DamagePerRound:     2,
			AttackRate:         1000,
			BossRadius:         40,
			BossHealth:         500,
			BossHealthPerRound: 100,
			BossSpeed:          60,
			BossSpeedPerRound:  2,
			BossDamage:         50,
			ExploderChance:     0.1,
			ExploderMinRound:   3,
			ExploderRadius:     100,
			ExploderDamage:     30,
			ToxicChance:        0.1,
			ToxicMinRound:      5,
			ToxicDuration:      2000,
			BurnTickDamage:     5,
			BurnTickInterval:   500,
			HealthScale:        1,
			DamageScale:        1,
		},
		Director: DirectorConfig{
			Countdown:         3000,
			Transition:        3000,
			FirstRoundBudget:  6,
			BaseBudget:        6,
			BudgetPerRound:    3,
			SpawnInterval:     2000,
			SpawnIntervalStep: 100,
			SpawnIntervalMin:  500,
			BossEvery:         5,
			MaxFrame:          50,
		},
		Economy: EconomyConfig{
			StartingPoints: 500,
			KillPoints:     100,
			BossKillPoints: 500,
			NukePoints:     50,
			MysteryBoxCost: 950,
			BoxMinUses:     3,
			BoxMaxUses:     6,
		},
		PowerUps: PowerUpConfig{
			DropChance:   0.05,
			Lifetime:     15000,
			Duration:     30000,
			PickupRadius: 40,
		},
		Grenades: GrenadeConfig{
			TravelTime:    800,
			ArcHeight:     100,
			ThrowDistance: 300,
			Interpolation: InterpolationDecay,
			ExplosionTime: 500,
			Profiles: map[string]GrenadeProfile{
				GrenadeFrag:    {Radius: 150, Damage: 500, Shake: 15},
				GrenadeMolotov: {Radius: 200, Damage: 100, Burn: 2000, Shake: 12},
				GrenadeStun:    {Radius: 200, Stun: 4000, Shake: 8},
				GrenadeDisco:   {Radius: 200, Stun: 6000, Shake: 8},
			},
		},
		Feed: FeedConfig{
			MaxEntries: 8,
			Lifetime:   5000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				HealthMultiplier: 0,
				DamageMultiplier: 0,
				SpawnIntervalCut: 0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "survival", "outpost", "compound":
		return defaultSurvivalYAML
	default:
		return nil
	}
}
