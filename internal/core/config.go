package core

import "time"

// DefaultHoldWindow is how long a terminal key counts as held after its last
// press. Terminals report no key-up, so autorepeat presses keep it alive.
const DefaultHoldWindow = 180 * time.Millisecond

// RuntimeConfig contains configuration passed to a frontend at startup.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickRate   int           // Ticks per second requested from the scheduler (default 60)
	Seed       int64         // RNG seed; 0 means use current time in platform layer
	HoldWindow time.Duration // Terminal key hold emulation window
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		HoldWindow: DefaultHoldWindow,
	}
}

// TickInterval returns the scheduling period for the configured tick rate.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
