package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host loop (default 60)
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

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseStart    Phase = iota // Start screen, waiting for the first key
	PhaseRunning               // Simulation running
	PhaseGameOver              // Run finished, waiting for restart
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int           // Current score
	Coins    int           // Coins collected
	Level    int           // Current level (starts at 1)
	Elapsed  time.Duration // Simulated running time
	GameOver bool          // Whether the game has ended
	Paused   bool          // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
