package core

// RuntimeConfig contains what the platform hands the game at start-up.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the wall clock
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
