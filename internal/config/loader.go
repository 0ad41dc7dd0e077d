package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAliens loads the game configuration.
// Search order: customPath -> ~/.aliens/configs/aliens.yaml ->
// ./configs/aliens.yaml -> embedded default.
func LoadAliens(customPath string) (AliensConfig, error) {
	var cfg AliensConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("aliens.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/aliens.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAliensYAML, &cfg); err != nil {
		return DefaultAliensConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.validate()
}

// userConfigPath returns the path to the user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aliens", "configs", filename)
}

// validate rejects configurations the board cannot be built from.
func (c AliensConfig) validate() error {
	if c.Board.Height < 3 || c.Board.Width < 3 {
		return fmt.Errorf("config: board %dx%d is too small to play on", c.Board.Width, c.Board.Height)
	}
	if c.Enemies.Count < 1 {
		return fmt.Errorf("config: enemy count must be at least 1, got %d", c.Enemies.Count)
	}
	if c.Enemies.Spacing < 1 {
		return fmt.Errorf("config: enemy spacing must be at least 1, got %d", c.Enemies.Spacing)
	}
	if c.Timing.TicksPerSecond < 1 {
		return fmt.Errorf("config: ticks_per_second must be at least 1, got %d", c.Timing.TicksPerSecond)
	}
	if c.Timing.ProjectileStep < 1 {
		return fmt.Errorf("config: projectile_step must be at least 1, got %d", c.Timing.ProjectileStep)
	}
	return nil
}

// ApplyAliensPreset adjusts the config for a named difficulty preset.
// Easy slows the swarm down and mutes return fire; hard speeds the
// swarm up and shortens enemy cooldowns.
func ApplyAliensPreset(cfg *AliensConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.TicksPerMove += 2
		cfg.Enemies.TicksPerShot *= 2
	case DifficultyHard:
		if cfg.Enemies.TicksPerMove > 1 {
			cfg.Enemies.TicksPerMove--
		}
		cfg.Enemies.TicksPerShot = max(1, cfg.Enemies.TicksPerShot/2)
		cfg.Enemies.Count += cfg.Board.Width
	case DifficultyNormal:
		// Defaults are the normal preset.
	}
}
