// Package options configures evaluator construction.
package options

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/robbyt/go-keypadcalc/display"
)

// Config holds all configuration for creating an evaluator
type Config struct {
	// Logger for the evaluator
	handler slog.Handler
	// Sink that receives every display frame
	sink display.Sink
}

// Option is a function that modifies Config
type Option func(*Config) error

// DefaultConfig creates an empty Config, ready for options to be applied.
func DefaultConfig() *Config {
	return &Config{}
}

// WithLogHandler sets the logger for the evaluator
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithSlog sets the slog logger for the evaluator
func WithSlog(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger != nil {
			c.handler = logger.Handler()
		}
		return nil
	}
}

// WithDisplay sets the sink that receives every display frame
func WithDisplay(sink display.Sink) Option {
	return func(c *Config) error {
		if sink != nil {
			c.sink = sink
		}
		return nil
	}
}

// WithDefaults fills in any missing values that have usable defaults. The
// display sink has no default: the evaluator is useless without a surface to
// show on, so a missing sink is left for Validate to reject.
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = slog.NewTextHandler(os.Stderr, nil)
		}
		return nil
	}
}

// Validate performs basic validation on the configuration.
func (c *Config) Validate() error {
	var errz []error
	if c.handler == nil {
		errz = append(errz, fmt.Errorf("no logger specified"))
	}
	if c.sink == nil {
		errz = append(errz, fmt.Errorf("no display sink specified"))
	}
	return errors.Join(errz...)
}

// GetHandler returns the configured logger
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// SetHandler sets the logger
func (c *Config) SetHandler(handler slog.Handler) {
	c.handler = handler
}

// GetSink returns the configured display sink
func (c *Config) GetSink() display.Sink {
	return c.sink
}

// SetSink sets the display sink
func (c *Config) SetSink(sink display.Sink) {
	c.sink = sink
}
