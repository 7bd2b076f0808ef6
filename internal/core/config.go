package core

// RuntimeConfig contains configuration passed to a game session at startup.
// The seed makes secret-word selection reproducible in tests.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for secret selection (0 = time-based, set by platform)
	Debug   bool  // Reveal the secret word and catalog statistics on screen
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}
