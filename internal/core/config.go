package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run.
type GameState struct {
	Distance int  // Horizontal distance covered, in world units
	Landings int  // Number of platform landings
	GameOver bool // Whether the player fell into the void
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// FixedClock reports a constant frame time derived from a tick rate.
// The simulation never reads wall time, which keeps runs reproducible.
type FixedClock struct {
	dt float64
}

// NewFixedClock returns a clock for the given ticks per second.
// Non-positive rates fall back to 60.
func NewFixedClock(tickRate int) FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FixedClock{dt: 1 / float64(tickRate)}
}

// DeltaTime returns the seconds elapsed per tick.
func (c FixedClock) DeltaTime() float64 {
	return c.dt
}

// Interval returns the wall-clock duration of one tick.
func (c FixedClock) Interval() time.Duration {
	return time.Duration(c.dt * float64(time.Second))
}
