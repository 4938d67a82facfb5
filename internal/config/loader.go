package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "corgi.yaml"

// LoadCorgi loads the Courageous Corgi configuration.
// Search order: customPath -> ~/.corgi/configs/corgi.yaml -> ./configs/corgi.yaml -> embedded default.
// Only an explicit customPath can fail; unreadable files further down the chain are skipped.
func LoadCorgi(customPath string) (CorgiConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CorgiConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CorgiConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCorgiYAML)
	if err != nil {
		return DefaultCorgiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a partial file only
// overrides the keys it names. Lists replace the default lists entirely.
func Parse(data []byte) (CorgiConfig, error) {
	cfg := DefaultCorgiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CorgiConfig{}, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and validates a config file without falling back.
// Used by `corgi config validate`.
func LoadFile(path string) (CorgiConfig, error) {
	cfg, err := LoadCorgi(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".corgi", "configs", filename)
}

// ApplyCorgiPreset modifies the config based on a difficulty preset.
// Normal and the empty preset keep the configured values.
func ApplyCorgiPreset(cfg *CorgiConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartingLives = 5
	case DifficultyHard:
		cfg.Gameplay.StartingLives = 2
		cfg.Gameplay.WinScore = int(math.Ceil(float64(cfg.Gameplay.WinScore) * 1.5))
	}
}
