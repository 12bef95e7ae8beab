package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/dodochess-go/internal/chess"
	"github.com/lgbarn/dodochess-go/internal/errors"
)

// InitialFEN is the FEN string for the default starting position.
const InitialFEN = "8/8/8/8/8/8/RBN2nbr/KBN2nbk w - - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
// Pawns and queens do not exist in Dodo chess and are reported as not found.
func ConvertFENCharToPiece(c byte) (chess.PieceType, bool) {
	switch c {
	case 'K', 'k':
		return chess.King, true
	case 'R', 'r':
		return chess.Rook, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'N', 'n':
		return chess.Knight, true
	default:
		return 0, false
	}
}

// NewGameFromFEN creates a game from a FEN string. Only the piece placement
// and side to move fields are used; the remaining fields may be present but
// are ignored. Ids are assigned per colour and piece type in reading order,
// starting at 1.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	white, black, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	g, err := newGame(white, black, toMove)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
	}
	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string
// into one placement list per colour.
func parsePiecePositions(positions string) ([]Placement, []Placement, error) {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return nil, nil, fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	var setups [2][]Placement
	var nextID [2][chess.NumPieceTypes]int

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return nil, nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				pieceType, ok := ConvertFENCharToPiece(byte(c))
				if !ok {
					return nil, nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return nil, nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}

				nextID[colour][pieceType]++
				setups[colour] = append(setups[colour], Placement{
					Type:   pieceType,
					Square: chess.Square{Row: row, Col: col}.String(),
					ID:     nextID[colour][pieceType],
				})
				col++
			}
		}
		if col != chess.BoardSize {
			return nil, nil, fmt.Errorf("rank %d covers %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return setups[chess.White], setups[chess.Black], nil
}

// parseSideToMove parses the side to move field. White moves if it is absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}
