// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/dodochess-go/internal/config"
	"github.com/lgbarn/dodochess-go/internal/engine"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	noColour     = flag.Bool("nocolour", false, "Don't colour the board")
	asciiBoard   = flag.Bool("ascii", false, "Draw pieces as letters instead of chess symbols")
	showMoves    = flag.Bool("showmoves", false, "Mark the destinations of the side to move")

	// Starting position
	whiteSetup = flag.String("white", "", "White placements, e.g. 'KING:a1:1,ROOK:a2:1'")
	blackSetup = flag.String("black", "", "Black placements, e.g. 'KING:h1:1,ROOK:h2:1'")
	fenSetup   = flag.String("fen", "", "Start from a FEN position")

	// Logging
	logFile   = flag.String("l", "", "Write the move transcript to this file")
	appendLog = flag.String("L", "", "Append the move transcript to this file")
	verbosity = flag.Int("v", 1, "Transcript verbosity: 0=nothing, 1=move outcomes, 2=running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (no transcript)")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyDisplayFlags(cfg)
	if err := applySetupFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyDisplayFlags configures how the board is drawn.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.UseColour = !*noColour
	cfg.Display.UseUnicode = !*asciiBoard
	cfg.Display.ShowMoves = *showMoves
}

// applySetupFlags configures the starting position.
func applySetupFlags(cfg *config.Config) error {
	white, err := engine.ParsePlacements(*whiteSetup)
	if err != nil {
		return fmt.Errorf("-white: %w", err)
	}
	black, err := engine.ParsePlacements(*blackSetup)
	if err != nil {
		return fmt.Errorf("-black: %w", err)
	}
	cfg.Setup.White = white
	cfg.Setup.Black = black
	cfg.Setup.FEN = *fenSetup
	return nil
}
