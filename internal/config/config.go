// Package config provides configuration for the dodochess front end.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=move outcomes, 2=running commentary

	Display *DisplayConfig
	Setup   *SetupConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    NewDisplayConfig(),
		Setup:      NewSetupConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the board and messages go to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer the move transcript goes to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	return c.Setup.Validate()
}
