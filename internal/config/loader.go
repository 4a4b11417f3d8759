package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "runner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Keys missing from a file keep their default values. The result is validated.
func Load(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and validates it.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset Preset) error {
	switch preset {
	case "", PresetClassic:
		// Keep loaded values
	case PresetEasy:
		cfg.Spawner.MinPlatformWidth = 24
		cfg.Spawner.MaxPlatformWidth = 30
		cfg.Spawner.MinXSpacing = 32
		cfg.Spawner.MaxXSpacing = 38
		cfg.Spawner.MinYSpacing = -4
		cfg.Spawner.MaxYSpacing = 4
	case PresetHard:
		cfg.Spawner.MinPlatformWidth = 14
		cfg.Spawner.MaxPlatformWidth = 22
		cfg.Spawner.MinXSpacing = 40
		cfg.Spawner.MaxXSpacing = 52
		cfg.Spawner.MinYSpacing = -10
		cfg.Spawner.MaxYSpacing = 10
	case PresetSnappy:
		cfg.Motion.Gravity = 60
		cfg.Motion.JumpSpeed = 30
		cfg.Motion.RunningAccelerationRate = 4
	default:
		return fmt.Errorf("unknown preset %q", preset)
	}
	return nil
}
