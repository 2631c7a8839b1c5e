package core

// RuntimeConfig contains configuration passed to carts at initialization.
// The console has a fixed logical resolution; the platform scales it to the
// terminal however it can.
type RuntimeConfig struct {
	ConsoleW int // Console width in pixels
	ConsoleH int // Console height in pixels
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with the standard console setup.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ConsoleW: 128,
		ConsoleH: 128,
		TickRate: 30,
	}
}
