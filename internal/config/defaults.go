package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Spawner: SpawnerConfig{
			SpawnAtDistance:  50,
			RecycleDistance:  50,
			MinPlatformWidth: 20,
			MaxPlatformWidth: 30,
			MinXSpacing:      35,
			MaxXSpacing:      45,
			MinYSpacing:      -8,
			MaxYSpacing:      8,
			SpawnOriginX:     0,
			SpawnOriginY:     0,
		},
		Motion: MotionConfig{
			RunningAccelerationRate: 5,
			JumpSpeed:               20,
			Gravity:                 0.5,
			BottomOfTheWorld:        -60,
		},
		Player: PlayerConfig{
			StartX: 0,
			StartY: 4,
			Width:  2,
			Height: 3,
		},
		World: WorldConfig{
			PlatformThickness: 1,
			TriggerSkin:       0.25,
			CellsPerUnitX:     0.5,
			CellsPerUnitY:     0.25,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
