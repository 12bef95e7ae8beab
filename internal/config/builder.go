package config

import (
	"io"

	"github.com/lgbarn/dodochess-go/internal/engine"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the transcript writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithColour enables or disables ANSI colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.UseColour = enabled
	return b
}

// WithUnicode chooses between chess symbols and piece letters.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.UseUnicode = enabled
	return b
}

// WithShowMoves enables marking the destinations of the side to move.
func (b *ConfigBuilder) WithShowMoves(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowMoves = enabled
	return b
}

// WithSetup sets the starting placements of both sides.
func (b *ConfigBuilder) WithSetup(white, black []engine.Placement) *ConfigBuilder {
	b.cfg.Setup.White = white
	b.cfg.Setup.Black = black
	return b
}

// WithFEN starts the game from a FEN position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Setup.FEN = fen
	return b
}
