package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickMs returns the fixed tick length in milliseconds.
func (c RuntimeConfig) TickMs() int64 {
	if c.TickRate <= 0 {
		return 1000 / 60
	}
	return int64(1000 / c.TickRate)
}

// GameState is the platform-facing summary of a run.
type GameState struct {
	Score    int
	Distance float64
	Lives    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events int // simulation events applied this tick
}

// RunSummary describes a finished or ongoing run for persistence.
type RunSummary struct {
	GameID     string
	Seed       int64
	Score      int
	Distance   float64
	Coins      int
	Gems       int
	NearMisses int
	MaxCombo   int
	DurationMs int64
}
