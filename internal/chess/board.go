package chess

import (
	"strconv"
	"strings"
)

// Board is an 8x8 grid of piece references. The board does not own the
// pieces; the players do. Board[row][col] with row 0 being rank 8.
type Board struct {
	Squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Place writes p into the cell matching its current position, replacing any
// stale reference there.
func (b *Board) Place(p *Piece) {
	pos := p.Pos()
	b.Squares[pos.Row][pos.Col] = p
}

// At returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) At(sq Square) *Piece {
	if !sq.OnBoard() {
		return nil
	}
	return b.Squares[sq.Row][sq.Col]
}

// Clear empties sq. Clearing an empty square is a no-op.
func (b *Board) Clear(sq Square) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = nil
	}
}

// Placement returns the FEN piece placement field, rank 8 first.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}

// FEN returns a full FEN string for the position with toMove to play.
// Dodo chess has no castling, en passant or move clocks, so those fields
// are fixed.
func (b *Board) FEN(toMove Colour) string {
	side := "w"
	if toMove == Black {
		side = "b"
	}
	return b.Placement() + " " + side + " - - 0 1"
}
