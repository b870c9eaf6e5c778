package driver

import "time"

// Config holds the driver and session configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// ReadTimeout is the serial response window
	ReadTimeout time.Duration

	// RetryCooldown is the pause before the link is reopened after a
	// failed operation
	RetryCooldown time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ReadTimeout:   5 * time.Second,
		RetryCooldown: time.Second,
	}
}

// Option is a functional option for configuring the Driver or Session.
type Option func(*Config)

// WithLogger sets a logger for driver and session operations.
//
// Example:
//
//	sess, err := driver.Open("/dev/ttyUSB0", driver.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithReadTimeout sets the serial response timeout. Default is 5 seconds.
//
// Example:
//
//	sess, err := driver.Open("/dev/ttyUSB0", driver.WithReadTimeout(10*time.Second))
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ReadTimeout = timeout
		}
	}
}

// WithRetryCooldown sets the pause before the link is reopened after a
// failed operation. Default is 1 second.
//
// Example:
//
//	sess, err := driver.Open("/dev/ttyUSB0", driver.WithRetryCooldown(500*time.Millisecond))
func WithRetryCooldown(cooldown time.Duration) Option {
	return func(c *Config) {
		if cooldown >= 0 {
			c.RetryCooldown = cooldown
		}
	}
}
