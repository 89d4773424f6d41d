package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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
// Returned by Game.State() to communicate status to the platform, which reads
// it once per displayed frame.
type GameState struct {
	Score    int    // Coins collected this run
	Lives    int    // Remaining lives
	TimeLeft int    // Remaining time in whole seconds
	GameOver bool   // Whether the run has ended (win or loss)
	Won      bool   // Whether the run ended at the flag
	Paused   bool   // Whether the game is paused
	Status   string // Human-readable status message (paused/won/lost/empty)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
