// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// AliensConfig contains all tunable parameters for the invaders game.
type AliensConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Player  PlayerConfig  `yaml:"player"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
}

// BoardConfig defines the playable grid dimensions (excluding the
// border frame and HUD bars).
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// EnemyConfig defines the enemy swarm parameters.
type EnemyConfig struct {
	Count        int  `yaml:"count"`          // Enemies placed along the snake path
	Spacing      int  `yaml:"spacing"`        // Snake-path steps between successive enemies
	TicksPerMove int  `yaml:"ticks_per_move"` // Movement cadence (higher = slower swarm)
	TicksPerShot int  `yaml:"ticks_per_shot"` // Per-enemy fire cooldown
	Fire         bool `yaml:"fire"`           // Whether enemies fire back at all
}

// PlayerConfig defines the player ship parameters.
type PlayerConfig struct {
	TicksPerShot int `yaml:"ticks_per_shot"` // Fire cooldown
}

// ScoringConfig defines score bookkeeping.
type ScoringConfig struct {
	KillPoints int `yaml:"kill_points"` // Awarded per destroyed enemy
}

// TimingConfig defines simulation pacing.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
	ProjectileStep int `yaml:"projectile_step"` // Ticks per projectile cell advance (1 = every tick)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
