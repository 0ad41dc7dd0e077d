package config

import (
	_ "embed"
)

//go:embed defaults/aliens.yaml
var defaultAliensYAML []byte

// DefaultAliensConfig returns the built-in configuration, matching the
// embedded defaults/aliens.yaml.
func DefaultAliensConfig() AliensConfig {
	return AliensConfig{
		Board: BoardConfig{
			Height: 15,
			Width:  25,
		},
		Enemies: EnemyConfig{
			Count:        50,
			Spacing:      2,
			TicksPerMove: 3,
			TicksPerShot: 25,
			Fire:         true,
		},
		Player: PlayerConfig{
			TicksPerShot: 2,
		},
		Scoring: ScoringConfig{
			KillPoints: 100,
		},
		Timing: TimingConfig{
			TicksPerSecond: 10,
			ProjectileStep: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultAliensYAML
}
