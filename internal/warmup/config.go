package warmup

import "time"

// DefaultDelay keeps the environment busy long enough for the fanned-out
// invocations to overlap.
const DefaultDelay = 75 * time.Millisecond

// Config controls how warm-up pings are processed.
type Config struct {
	// LogEnabled emits one record per warm-up ping.
	LogEnabled bool
	// Delay is waited before any warm-up work starts.
	Delay time.Duration
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		LogEnabled: true,
		Delay:      DefaultDelay,
	}
}
