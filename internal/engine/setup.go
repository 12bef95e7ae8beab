package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/dodochess-go/internal/chess"
	"github.com/lgbarn/dodochess-go/internal/errors"
)

// Placement is one entry of a starting configuration: a piece type, its
// starting coordinate and an id unique among that side's pieces of that type.
type Placement struct {
	Type   chess.PieceType
	Square string
	ID     int
}

// String returns the placement in the TYPE:square:id form read by ParsePlacement.
func (p Placement) String() string {
	return fmt.Sprintf("%v:%s:%d", p.Type, p.Square, p.ID)
}

// ParsePlacement parses a placement written as TYPE:square:id, e.g. "KING:a1:1".
func ParsePlacement(text string) (Placement, error) {
	fields := strings.Split(strings.TrimSpace(text), ":")
	if len(fields) != 3 {
		return Placement{}, fmt.Errorf("%q: want TYPE:square:id: %w", text, errors.ErrInvalidSetup)
	}
	pieceType, err := chess.ParsePieceType(fields[0])
	if err != nil {
		return Placement{}, err
	}
	if _, err := chess.ParseSquare(fields[1]); err != nil {
		return Placement{}, err
	}
	id, err := strconv.Atoi(fields[2])
	if err != nil {
		return Placement{}, fmt.Errorf("%q: id %q: %w", text, fields[2], errors.ErrInvalidSetup)
	}
	return Placement{Type: pieceType, Square: fields[1], ID: id}, nil
}

// ParsePlacements parses a comma separated list of placements.
// An empty string yields a nil slice.
func ParsePlacements(text string) ([]Placement, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var placements []Placement
	for i, entry := range strings.Split(text, ",") {
		p, err := ParsePlacement(entry)
		if err != nil {
			return nil, &errors.SetupError{Err: err, Index: i + 1, Entry: strings.TrimSpace(entry)}
		}
		placements = append(placements, p)
	}
	return placements, nil
}

// DefaultWhiteSetup returns the standard white layout on files a to c.
func DefaultWhiteSetup() []Placement {
	return []Placement{
		{chess.King, "a1", 1},
		{chess.Rook, "a2", 1},
		{chess.Bishop, "b1", 1},
		{chess.Bishop, "b2", 2},
		{chess.Knight, "c1", 1},
		{chess.Knight, "c2", 2},
	}
}

// DefaultBlackSetup returns the standard black layout, mirroring white on files f to h.
func DefaultBlackSetup() []Placement {
	return []Placement{
		{chess.King, "h1", 1},
		{chess.Rook, "h2", 1},
		{chess.Bishop, "g1", 1},
		{chess.Bishop, "g2", 2},
		{chess.Knight, "f1", 1},
		{chess.Knight, "f2", 2},
	}
}

type pieceKey struct {
	pieceType chess.PieceType
	id        int
}

// buildPlayer creates the pieces of one side and places them on board.
// The first KING entry becomes the player's king.
func buildPlayer(colour chess.Colour, placements []Placement, board *chess.Board) (*chess.Player, error) {
	var king *chess.Piece
	pieces := make([]*chess.Piece, 0, len(placements))
	seen := make(map[pieceKey]bool, len(placements))

	for i, pl := range placements {
		fail := func(err error) error {
			return &errors.SetupError{Err: err, Colour: colour.String(), Index: i + 1, Entry: pl.String()}
		}

		if pl.Type < 0 || pl.Type >= chess.NumPieceTypes {
			return nil, fail(errors.ErrUnknownPiece)
		}
		sq, err := chess.ParseSquare(pl.Square)
		if err != nil {
			return nil, fail(err)
		}
		if occupant := board.At(sq); occupant != nil {
			return nil, fail(fmt.Errorf("%s already holds %v: %w", pl.Square, occupant, errors.ErrInvalidSetup))
		}
		key := pieceKey{pl.Type, pl.ID}
		if seen[key] {
			return nil, fail(fmt.Errorf("duplicate %v id %d: %w", pl.Type, pl.ID, errors.ErrInvalidSetup))
		}
		seen[key] = true

		p := chess.NewPiece(pl.Type, colour, pl.ID, sq)
		board.Place(p)
		if pl.Type == chess.King && king == nil {
			king = p
		}
		pieces = append(pieces, p)
	}

	if king == nil {
		return nil, &errors.SetupError{Err: fmt.Errorf("no king: %w", errors.ErrInvalidSetup), Colour: colour.String()}
	}

	player := chess.NewPlayer(colour, king)
	for _, p := range pieces {
		player.AddPiece(p)
	}
	return player, nil
}
