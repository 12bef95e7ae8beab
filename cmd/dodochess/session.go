package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/dodochess-go/internal/chess"
	"github.com/lgbarn/dodochess-go/internal/config"
	"github.com/lgbarn/dodochess-go/internal/engine"
	"github.com/lgbarn/dodochess-go/internal/output"
)

// session plays one game between two people sharing a terminal.
type session struct {
	id     string
	cfg    *config.Config
	game   *engine.Game
	in     *bufio.Scanner
	board  *output.BoardWriter
	prompt bool // print input prompts; off when stdin is not a terminal
}

func newSession(cfg *config.Config, g *engine.Game, r io.Reader, prompt bool) *session {
	return &session{
		id:     uuid.New().String(),
		cfg:    cfg,
		game:   g,
		in:     bufio.NewScanner(r),
		board:  output.NewBoardWriter(cfg.OutputFile, cfg.Display),
		prompt: prompt,
	}
}

// run plays until the game ends or the input runs out. Only failures to
// write the output are returned.
func (s *session) run() error {
	s.logf(1, "new game %s", s.game.FEN())
	s.println(output.Introduction)
	if err := s.board.WriteBoard(s.game); err != nil {
		return err
	}

	for !s.game.State().IsTerminal() {
		mover := s.game.Turn()
		from, to, ok := s.readMove(mover)
		if !ok {
			s.logf(1, "input closed")
			break
		}

		outcome := s.game.Play(from, to)
		s.logf(1, "%v %v-%v: %v", mover, from, to, outcome)

		if s.game.State().IsTerminal() {
			break
		}
		if !outcome.OK() {
			s.println(output.RejectionMessage(outcome))
			continue
		}

		s.logf(2, "position %s", s.game.FEN())
		if err := s.board.WriteBoard(s.game); err != nil {
			return err
		}
	}

	if state := s.game.State(); state.IsTerminal() {
		if err := s.board.WriteBoard(s.game); err != nil {
			return err
		}
		s.println(output.StateMessage(state))
		s.logf(1, "game over: %v after %d moves", state, s.game.Ply())
		for _, colour := range chess.Colours {
			s.logf(2, "%v pieces: %v", colour, s.game.Player(colour).Pieces())
		}
	}
	s.println(output.Goodbye)
	return nil
}

// readMove asks the player for a source and a destination until both parse
// and differ. It reports false once the input is exhausted.
func (s *session) readMove(colour chess.Colour) (chess.Square, chess.Square, bool) {
	for {
		s.println(output.TurnPrompt(colour))
		source, ok := s.readLine("Enter which piece you would like to move: ")
		if !ok {
			return chess.Square{}, chess.Square{}, false
		}
		dest, ok := s.readLine("Enter where you would like to move the piece: ")
		if !ok {
			return chess.Square{}, chess.Square{}, false
		}

		from, errFrom := chess.ParseSquare(source)
		to, errTo := chess.ParseSquare(dest)
		if errFrom != nil || errTo != nil || from == to {
			s.logf(2, "invalid input %q %q", source, dest)
			s.println(output.InvalidInput)
			continue
		}
		return from, to, true
	}
}

func (s *session) readLine(prompt string) (string, bool) {
	if s.prompt {
		fmt.Fprint(s.cfg.OutputFile, prompt)
	}
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) println(msg string) {
	fmt.Fprintln(s.cfg.OutputFile, msg)
}

// logf writes a transcript line when the configured verbosity reaches level.
func (s *session) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity < level || s.cfg.LogFile == nil {
		return
	}
	fmt.Fprintf(s.cfg.LogFile, "[%s] %s\n", s.id, fmt.Sprintf(format, args...))
}
