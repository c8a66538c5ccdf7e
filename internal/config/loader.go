package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSurvival loads the survival engine configuration.
// Search order: customPath -> ~/.deadzone/configs/survival.yaml -> ./configs/survival.yaml -> embedded default
//
// Documents are decoded over DefaultSurvivalConfig, so a partial file only
// overrides the keys it names.
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	cfg := DefaultSurvivalConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("survival.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, ok := decodeSurvival(data); ok {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "survival.yaml")); err == nil {
		if loaded, ok := decodeSurvival(data); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if loaded, ok := decodeSurvival(defaultSurvivalYAML); ok {
		return loaded, nil
	}
	return DefaultSurvivalConfig(), nil // Fallback to hardcoded if embed fails
}

func decodeSurvival(data []byte) (SurvivalConfig, bool) {
	cfg := DefaultSurvivalConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".deadzone", "configs", filename)
}

// ParsePreset converts a flag value into a preset. Unknown names map to normal.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return DifficultyNormal
	}
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
// Normal keeps the stock tuning untouched.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Economy.StartingPoints = 1000
		cfg.Zombie.HealthScale = 0.75
		cfg.Zombie.DamageScale = 0.75
	case DifficultyHard:
		cfg.Economy.StartingPoints = 250
		cfg.Difficulty.Scaling.HealthMultiplier = 1.0
		cfg.Difficulty.Scaling.DamageMultiplier = 0.5
		cfg.Difficulty.Scaling.SpawnIntervalCut = 300
	}
}
