package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRush loads the TileRush configuration.
// Search order: customPath -> ~/.tilerush/configs/tilerush.yaml ->
// ./configs/tilerush.yaml -> embedded default -> hardcoded default.
// Only an explicit customPath produces an error; every other source falls
// through to the next one on failure, so a missing or corrupt config file
// never prevents a game from starting.
func LoadRush(customPath string) (RushConfig, error) {
	var cfg RushConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	if userCfgPath := userConfigPath("tilerush.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/tilerush.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRushYAML, &cfg); err != nil {
		return DefaultRushConfig(), nil
	}
	cfg.Normalize()
	return cfg, nil
}

// ParseRush parses a configuration from raw YAML, falling back to the
// default configuration when the blob is corrupt. Used for configuration
// persisted by the settings store.
func ParseRush(data []byte) RushConfig {
	var cfg RushConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRushConfig()
	}
	cfg.Normalize()
	return cfg
}

// EncodeRush serializes a configuration to YAML for persistence.
func EncodeRush(cfg RushConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilerush", "configs", filename)
}
