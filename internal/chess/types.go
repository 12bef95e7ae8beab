// Package chess provides the board, pieces and players of a Dodo chess game.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/dodochess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// Colours lists both sides in turn order.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "WHITE"
	}
	return "BLACK"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the kind of a piece. Dodo chess has no queens or pawns.
type PieceType int

const (
	King PieceType = iota
	Rook
	Bishop
	Knight
	NumPieceTypes
)

// String returns the name of a piece type as used in setups.
func (p PieceType) String() string {
	names := []string{"KING", "ROOK", "BISHOP", "KNIGHT"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "UNKNOWN"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'K', 'R', 'B', 'N'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// ParsePieceType converts a piece type name such as "KNIGHT" (any case)
// to a PieceType.
func ParsePieceType(name string) (PieceType, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for p := King; p < NumPieceTypes; p++ {
		if p.String() == upper {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, errors.ErrUnknownPiece)
}

// GameState is the state of a game. InProgress is the only non-terminal value.
type GameState int

const (
	InProgress GameState = iota
	WhiteWon
	BlackWon
	Tie
	Stalemate
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	names := []string{"IN_PROGRESS", "WHITE_WON", "BLACK_WON", "TIE", "STALEMATE"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further moves are accepted in this state.
func (s GameState) IsTerminal() bool {
	return s != InProgress
}

// WonBy returns the winning state for the given colour.
func WonBy(colour Colour) GameState {
	if colour == White {
		return WhiteWon
	}
	return BlackWon
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1

	// EdgeRow is the row both kings race towards (rank 8).
	EdgeRow = 0
)
