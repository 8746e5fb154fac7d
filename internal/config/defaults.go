package config

import (
	_ "embed"
)

//go:embed defaults/tilerush.yaml
var defaultRushYAML []byte

// DefaultRushConfig returns the hardcoded default configuration.
// Used as the last-resort fallback when even the embedded YAML fails.
func DefaultRushConfig() RushConfig {
	return RushConfig{
		Board: BoardConfig{
			Size: 4,
		},
		Rules: RulesConfig{
			UndoRedo: true,
		},
		Spawn: SpawnConfig{
			Master:      true,
			Probability: 0.15,
			Powerups: PowerupSet{
				Bomb:    PowerupConfig{Enabled: true, Weight: 3},
				Joker:   PowerupConfig{Enabled: true, Weight: 4},
				Surge:   PowerupConfig{Enabled: true, Weight: 2},
				Shuffle: PowerupConfig{Enabled: true, Weight: 2},
				Glass:   PowerupConfig{Enabled: true, Weight: 5},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRushYAML
}
