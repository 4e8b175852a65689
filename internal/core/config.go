package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 30)
	Seed     int64  // RNG seed for deterministic gameplay
	Player   string // SSH user name, empty for local play
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the wall time covered by n ticks.
func (c RuntimeConfig) TickDuration(n int) time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Duration(n) * time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the current level is over
	Paused   bool // Whether the game is paused
}

// SolveReport describes a level the player just solved.
type SolveReport struct {
	LevelID  string // Pack level ID, empty for generated levels
	Width    int
	Height   int
	Fill     float64
	Seed     int64 // Seed of the random source that generated the level
	Moves    int
	Duration time.Duration
	Score    int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Solved *SolveReport // Set on the tick a level is solved
}
