// Package config provides YAML-based configuration loading and ruleset
// presets for the TileRush board engine.
package config

// RushConfig contains all configuration for a TileRush game.
type RushConfig struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	Size int `yaml:"size"` // Grid side length, 3-8
}

// RulesConfig gates the reversible-history features.
type RulesConfig struct {
	UndoRedo bool `yaml:"undo_redo"`
}

// SpawnConfig defines what appears in empty cells after a move.
type SpawnConfig struct {
	Master      bool       `yaml:"master"`      // Master switch for powerup spawning
	Probability float64    `yaml:"probability"` // Chance a spawn is a powerup, 0-0.4
	Powerups    PowerupSet `yaml:"powerups"`
}

// PowerupSet holds the per-kind spawn settings.
type PowerupSet struct {
	Bomb    PowerupConfig `yaml:"bomb"`
	Joker   PowerupConfig `yaml:"joker"`
	Surge   PowerupConfig `yaml:"surge"`
	Shuffle PowerupConfig `yaml:"shuffle"`
	Glass   PowerupConfig `yaml:"glass"`
}

// PowerupConfig enables one powerup kind and sets its relative spawn weight.
type PowerupConfig struct {
	Enabled bool    `yaml:"enabled"`
	Weight  float64 `yaml:"weight"` // Relative weight, 1-10
}

// Grid size and tuning bounds. Values outside these ranges are clamped by
// Normalize rather than rejected.
const (
	MinGridSize = 3
	MaxGridSize = 8

	MinSpawnProbability = 0.0
	MaxSpawnProbability = 0.4

	MinPowerupWeight = 1.0
	MaxPowerupWeight = 10.0
)

// Normalize clamps every tunable to its documented range. A config that
// arrived corrupt or hand-edited still yields a playable game.
func (c *RushConfig) Normalize() {
	c.Board.Size = clampInt(c.Board.Size, MinGridSize, MaxGridSize)
	c.Spawn.Probability = clampFloat(c.Spawn.Probability, MinSpawnProbability, MaxSpawnProbability)

	for _, p := range []*PowerupConfig{
		&c.Spawn.Powerups.Bomb,
		&c.Spawn.Powerups.Joker,
		&c.Spawn.Powerups.Surge,
		&c.Spawn.Powerups.Shuffle,
		&c.Spawn.Powerups.Glass,
	} {
		p.Weight = clampFloat(p.Weight, MinPowerupWeight, MaxPowerupWeight)
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RulesPreset represents a named ruleset.
type RulesPreset string

const (
	PresetClassic  RulesPreset = "classic"  // Default rules
	PresetHardcore RulesPreset = "hardcore" // No undo/redo, no powerups
	PresetChaos    RulesPreset = "chaos"    // Maximum powerup density
)

// ApplyPreset modifies the config according to a named preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *RushConfig, preset RulesPreset) {
	switch preset {
	case PresetHardcore:
		cfg.Rules.UndoRedo = false
		cfg.Spawn.Master = false
	case PresetChaos:
		cfg.Rules.UndoRedo = true
		cfg.Spawn.Master = true
		cfg.Spawn.Probability = MaxSpawnProbability
	case PresetClassic:
		cfg.Rules.UndoRedo = true
		cfg.Spawn.Master = true
	}
}
