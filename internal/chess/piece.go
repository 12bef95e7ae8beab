package chess

import "fmt"

// Offset tables, as (row, col) deltas. Row -1 is towards rank 8.
var (
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightOffsets = [][2]int{{-2, 1}, {-1, 2}, {1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}}
	rookDirs      = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	bishopDirs    = [][2]int{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
)

// Display symbols indexed by [Colour][PieceType].
var pieceSymbols = [2][NumPieceTypes]string{
	White: {King: "♔", Rook: "♖", Bishop: "♗", Knight: "♘"},
	Black: {King: "♚", Rook: "♜", Bishop: "♝", Knight: "♞"},
}

// Piece is a single piece on the board. Its legal move set is a cache:
// it reflects the board passed to the last RecomputeMoves call.
type Piece struct {
	Type   PieceType
	Colour Colour
	ID     int // unique among pieces of the same Type and Colour

	pos   Square
	moves SquareSet
}

// NewPiece creates a piece standing on pos with an empty move set.
func NewPiece(pieceType PieceType, colour Colour, id int, pos Square) *Piece {
	return &Piece{Type: pieceType, Colour: colour, ID: id, pos: pos}
}

// Pos returns the square the piece stands on.
func (p *Piece) Pos() Square {
	return p.pos
}

// SetPos records a new position. The board cell must be updated separately.
func (p *Piece) SetPos(sq Square) {
	p.pos = sq
}

// LegalMoves returns the destinations computed by the last RecomputeMoves.
func (p *Piece) LegalMoves() SquareSet {
	return p.moves
}

// RecomputeMoves regenerates the piece's destination set against b.
// Destinations may be empty or hold an opposing piece; friendly pieces block.
// Whether the move would leave a king attacked is not considered here.
func (p *Piece) RecomputeMoves(b *Board) {
	switch p.Type {
	case King:
		p.moves = p.stepMoves(b, kingOffsets)
	case Knight:
		p.moves = p.stepMoves(b, knightOffsets)
	case Rook:
		p.moves = p.slideMoves(b, rookDirs)
	case Bishop:
		p.moves = p.slideMoves(b, bishopDirs)
	default:
		p.moves = 0
	}
}

// stepMoves handles pieces that move a single offset with no ray continuation.
func (p *Piece) stepMoves(b *Board, offsets [][2]int) SquareSet {
	var moves SquareSet
	for _, offset := range offsets {
		target := p.pos.Offset(offset[0], offset[1])
		if !target.OnBoard() {
			continue
		}
		if occupant := b.At(target); occupant == nil || occupant.Colour != p.Colour {
			moves = moves.Add(target)
		}
	}
	return moves
}

// slideMoves handles pieces that repeat a direction until blocked.
func (p *Piece) slideMoves(b *Board, dirs [][2]int) SquareSet {
	var moves SquareSet
	for _, dir := range dirs {
		target := p.pos.Offset(dir[0], dir[1])
		for target.OnBoard() {
			occupant := b.At(target)
			if occupant != nil {
				if occupant.Colour != p.Colour {
					moves = moves.Add(target)
				}
				break // Blocked
			}
			moves = moves.Add(target)
			target = target.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// Symbol returns the unicode chess symbol of the piece.
func (p *Piece) Symbol() string {
	if p.Type < 0 || p.Type >= NumPieceTypes {
		return "?"
	}
	return pieceSymbols[p.Colour][p.Type]
}

// Letter returns the FEN letter of the piece: uppercase for white.
func (p *Piece) Letter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String describes the piece, e.g. "WHITE KNIGHT 2 at c2".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v %d at %v", p.Colour, p.Type, p.ID, p.pos)
}
