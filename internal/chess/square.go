package chess

import (
	"github.com/lgbarn/dodochess-go/internal/errors"
)

// Square is a board index pair. Row 0 is rank 8 and row 7 is rank 1;
// column 0 is file a.
type Square struct {
	Row int
	Col int
}

// ParseSquare converts a two character coordinate such as "e4" to a Square.
// The file must be a lowercase letter a-h and the rank a digit 1-8.
func ParseSquare(coord string) (Square, error) {
	if len(coord) != 2 {
		return Square{}, &errors.CoordinateError{Input: coord, Err: errors.ErrInvalidCoordinate}
	}
	file, rank := coord[0], coord[1]
	if file < FirstCol || file > LastCol || rank < FirstRank || rank > LastRank {
		return Square{}, &errors.CoordinateError{Input: coord, Err: errors.ErrInvalidCoordinate}
	}
	return Square{Row: int(LastRank - rank), Col: int(file - FirstCol)}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed coordinates in tables and tests.
func MustParseSquare(coord string) Square {
	sq, err := ParseSquare(coord)
	if err != nil {
		panic(err)
	}
	return sq
}

// OnBoard reports whether both indices lie in [0, 7].
func OnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// OnBoard reports whether the square lies on the board.
func (s Square) OnBoard() bool {
	return OnBoard(s.Row, s.Col)
}

// Offset returns the square dr rows and dc columns away. The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the coordinate of the square, e.g. "a1".
// Calling it on an off-board square is a programming error and panics.
func (s Square) String() string {
	if !s.OnBoard() {
		panic("chess: square off the board")
	}
	return string([]byte{byte(FirstCol + s.Col), byte(LastRank - s.Row)})
}

// index returns the 0-63 row-major position of an on-board square.
func (s Square) index() uint {
	return uint(s.Row*BoardSize + s.Col)
}

func squareAt(index uint) Square {
	return Square{Row: int(index) / BoardSize, Col: int(index) % BoardSize}
}
