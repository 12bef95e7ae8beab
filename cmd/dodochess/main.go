// dodochess is a two-player terminal game of Dodo chess: kings, rooks,
// bishops and knights race their king to rank 8.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/lgbarn/dodochess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("dodochess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *outputFile != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Display.UseColour = false
	}

	game, err := cfg.Setup.NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	s := newSession(cfg, game, os.Stdin, interactive)
	if err := s.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the transcript file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dodochess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players take turns entering moves as pairs of squares, e.g. c2 then d4.\n")
	fmt.Fprintf(os.Stderr, "The first king to reach rank 8 wins; if the other king follows on the next move, the game is a tie.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPlacements (-white, -black):\n")
	fmt.Fprintf(os.Stderr, "  Comma separated TYPE:square:id entries, TYPE one of KING, ROOK, BISHOP, KNIGHT.\n")
	fmt.Fprintf(os.Stderr, "  The first KING entry is the side's king. Both sides must be given together.\n")
}
