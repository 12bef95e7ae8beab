package chess

import (
	"math/bits"
	"sort"
	"strings"
)

// SquareSet is a set of board squares, one bit per square in row-major order.
// The zero value is the empty set.
type SquareSet uint64

// NewSquareSet returns a set holding the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns the set with sq included. Off-board squares are ignored.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.OnBoard() {
		return s
	}
	return s | 1<<sq.index()
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.OnBoard() && s&(1<<sq.index()) != 0
}

// Union returns the squares present in either set.
func (s SquareSet) Union(other SquareSet) SquareSet {
	return s | other
}

// Empty reports whether the set holds no squares.
func (s SquareSet) Empty() bool { return s == 0 }

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares returns the members in row-major order (a8 first, h1 last).
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		squares = append(squares, squareAt(uint(bits.TrailingZeros64(rest))))
	}
	return squares
}

// Strings returns the coordinates of the members, ordered by file then rank
// ("a1", "a2", ... "h8").
func (s SquareSet) Strings() []string {
	squares := s.Squares()
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Col != squares[j].Col {
			return squares[i].Col < squares[j].Col
		}
		return squares[i].Row > squares[j].Row
	})
	coords := make([]string, len(squares))
	for i, sq := range squares {
		coords[i] = sq.String()
	}
	return coords
}

// String returns the members as a space separated coordinate list.
func (s SquareSet) String() string {
	return "{" + strings.Join(s.Strings(), " ") + "}"
}
