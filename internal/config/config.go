// Package config provides YAML-based configuration loading and presets
// for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Spawner SpawnerConfig `yaml:"spawner"`
	Motion  MotionConfig  `yaml:"motion"`
	Player  PlayerConfig  `yaml:"player"`
	World   WorldConfig   `yaml:"world"`
}

// SpawnerConfig defines how platforms are placed and recycled.
type SpawnerConfig struct {
	SpawnAtDistance  float64 `yaml:"spawn_at_distance"` // Spawn when the next spawn point is closer than this
	RecycleDistance  float64 `yaml:"recycle_distance"`  // Recycle the oldest platform once the player is this far past it
	MinPlatformWidth float64 `yaml:"min_platform_width"`
	MaxPlatformWidth float64 `yaml:"max_platform_width"`
	MinXSpacing      float64 `yaml:"min_x_spacing"`
	MaxXSpacing      float64 `yaml:"max_x_spacing"`
	MinYSpacing      float64 `yaml:"min_y_spacing"` // May be negative
	MaxYSpacing      float64 `yaml:"max_y_spacing"`
	SpawnOriginX     float64 `yaml:"spawn_origin_x"` // Default spawn point of the first platform
	SpawnOriginY     float64 `yaml:"spawn_origin_y"`
}

// MotionConfig defines player physics.
type MotionConfig struct {
	RunningAccelerationRate float64 `yaml:"running_acceleration_rate"`
	JumpSpeed               float64 `yaml:"jump_speed"`
	Gravity                 float64 `yaml:"gravity"`
	BottomOfTheWorld        float64 `yaml:"bottom_of_the_world"`
}

// PlayerConfig defines the player collider and start position.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WorldConfig defines host-side geometry and the world-to-screen mapping.
type WorldConfig struct {
	PlatformThickness float64 `yaml:"platform_thickness"`
	TriggerSkin       float64 `yaml:"trigger_skin"` // Player trigger extends this far below the feet
	CellsPerUnitX     float64 `yaml:"cells_per_unit_x"`
	CellsPerUnitY     float64 `yaml:"cells_per_unit_y"`
}

// Validate checks the spawner bounds the pool relies on.
func (c SpawnerConfig) Validate() error {
	var errs []error
	if c.MinPlatformWidth > c.MaxPlatformWidth {
		errs = append(errs, fmt.Errorf("min_platform_width %v > max_platform_width %v", c.MinPlatformWidth, c.MaxPlatformWidth))
	}
	if c.MinPlatformWidth <= 0 {
		errs = append(errs, fmt.Errorf("min_platform_width must be positive, got %v", c.MinPlatformWidth))
	}
	if c.MinXSpacing > c.MaxXSpacing {
		errs = append(errs, fmt.Errorf("min_x_spacing %v > max_x_spacing %v", c.MinXSpacing, c.MaxXSpacing))
	}
	if c.MinXSpacing <= 0 {
		errs = append(errs, fmt.Errorf("min_x_spacing must be positive, got %v", c.MinXSpacing))
	}
	if c.MinYSpacing > c.MaxYSpacing {
		errs = append(errs, fmt.Errorf("min_y_spacing %v > max_y_spacing %v", c.MinYSpacing, c.MaxYSpacing))
	}
	if c.RecycleDistance < 0 {
		errs = append(errs, fmt.Errorf("recycle_distance must not be negative, got %v", c.RecycleDistance))
	}
	return errors.Join(errs...)
}

// Validate checks the physics tunables.
func (c MotionConfig) Validate() error {
	var errs []error
	if c.Gravity < 0 {
		errs = append(errs, fmt.Errorf("gravity must not be negative, got %v", c.Gravity))
	}
	if c.BottomOfTheWorld >= 0 {
		errs = append(errs, fmt.Errorf("bottom_of_the_world must be below zero, got %v", c.BottomOfTheWorld))
	}
	return errors.Join(errs...)
}

// Validate checks the whole configuration.
func (c RunnerConfig) Validate() error {
	var errs []error
	if err := c.Spawner.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("spawner: %w", err))
	}
	if err := c.Motion.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("motion: %w", err))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player: size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.World.PlatformThickness <= 0 {
		errs = append(errs, fmt.Errorf("world: platform_thickness must be positive, got %v", c.World.PlatformThickness))
	}
	if c.World.CellsPerUnitX <= 0 || c.World.CellsPerUnitY <= 0 {
		errs = append(errs, errors.New("world: cells_per_unit must be positive"))
	}
	return errors.Join(errs...)
}

// Preset represents a named tuning of the runner.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetEasy    Preset = "easy"
	PresetHard    Preset = "hard"
	PresetSnappy  Preset = "snappy"
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetEasy, PresetHard, PresetSnappy}
}
