package core

// RuntimeConfig is passed to games at initialization. Games use it to adapt
// to the terminal size and to seed their RNG for deterministic play.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState communicates game status to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score on record for this ruleset
	NewBest  bool // Best score was beaten during this game
	GameOver bool // The game has ended
	Paused   bool // The game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
