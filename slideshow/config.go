package slideshow

import (
	"fmt"
	"time"

	"github.com/lisheld/ledframe"
)

// Config is the slideshow controller's runtime configuration. All
// values are validated at startup; out-of-range values fail fast rather
// than being clamped.
type Config struct {
	// Refs is the ordered list of artifact references to cycle through.
	Refs []string

	// CycleTime is how long an image stays up before the next fetch.
	// Must exceed TickInterval.
	CycleTime time.Duration

	// TickInterval rate-limits dither ticks. The default of 66ms gives
	// roughly 15 palette updates per second.
	TickInterval time.Duration

	// Retry is the backoff policy applied after a failed cycle.
	Retry Backoff
}

// DefaultConfig returns the controller defaults with no references.
func DefaultConfig() Config {
	return Config{
		CycleTime:    10 * time.Second,
		TickInterval: 66 * time.Millisecond,
		Retry: Backoff{
			Delay:       2 * time.Second,
			MaxAttempts: 3,
		},
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if len(c.Refs) == 0 {
		return fmt.Errorf("%w: no image references", ledframe.ErrInvalidConfig)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v must be positive",
			ledframe.ErrInvalidConfig, c.TickInterval)
	}
	if c.CycleTime <= c.TickInterval {
		return fmt.Errorf("%w: cycle time %v must exceed tick interval %v",
			ledframe.ErrInvalidConfig, c.CycleTime, c.TickInterval)
	}
	return c.Retry.Validate()
}
