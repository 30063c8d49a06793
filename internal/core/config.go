package core

import "time"

// RuntimeConfig contains host-side settings passed to the game at startup.
// Board geometry and rules live in the game config; this only describes
// the terminal and the clock driving the simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Wall-clock time between simulation ticks
	Seed         int64         // RNG seed for food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 15 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState is the host-facing summary of a running game.
type GameState struct {
	Score    int  // Food eaten so far
	GameOver bool // The snake is gone and a restart is possible
	Won      bool // No free tile was left for food
	Paused   bool
}
