package chess

import "sort"

// Player owns one side's pieces and the union of their legal move sets.
// The union doubles as the set of squares the player attacks.
type Player struct {
	colour Colour
	pieces []*Piece
	king   *Piece
	moves  SquareSet
}

// NewPlayer creates a player whose king is fixed for the player's lifetime.
// The king is added to the player's pieces.
func NewPlayer(colour Colour, king *Piece) *Player {
	pl := &Player{colour: colour, king: king}
	if king != nil {
		pl.AddPiece(king)
	}
	return pl
}

// Colour returns the player's colour.
func (pl *Player) Colour() Colour {
	return pl.colour
}

// King returns the player's king.
func (pl *Player) King() *Piece {
	return pl.king
}

// Moves returns the aggregate move set from the last RecomputeMoves.
func (pl *Player) Moves() SquareSet {
	return pl.moves
}

// HasMoves reports whether any piece had a destination at the last recompute.
func (pl *Player) HasMoves() bool {
	return !pl.moves.Empty()
}

// Attacks reports whether sq is in the player's aggregate move set.
func (pl *Player) Attacks(sq Square) bool {
	return pl.moves.Has(sq)
}

// RecomputeMoves regenerates every piece's move set against b and rebuilds
// the aggregate as their union.
func (pl *Player) RecomputeMoves(b *Board) {
	var moves SquareSet
	for _, p := range pl.pieces {
		p.RecomputeMoves(b)
		moves = moves.Union(p.LegalMoves())
	}
	pl.moves = moves
}

// AddPiece adds p to the player's pieces. Adding a piece twice has no effect.
func (pl *Player) AddPiece(p *Piece) {
	if pl.indexOf(p) >= 0 {
		return
	}
	pl.pieces = append(pl.pieces, p)
}

// RemovePiece removes p from the player's pieces, if present.
func (pl *Player) RemovePiece(p *Piece) {
	i := pl.indexOf(p)
	if i < 0 {
		return
	}
	pl.pieces = append(pl.pieces[:i], pl.pieces[i+1:]...)
}

// Has reports whether p currently belongs to the player.
func (pl *Player) Has(p *Piece) bool {
	return pl.indexOf(p) >= 0
}

func (pl *Player) indexOf(p *Piece) int {
	for i, owned := range pl.pieces {
		if owned == p {
			return i
		}
	}
	return -1
}

// FindPiece returns the piece with the given type and id, or nil.
func (pl *Player) FindPiece(pieceType PieceType, id int) *Piece {
	for _, p := range pl.pieces {
		if p.Type == pieceType && p.ID == id {
			return p
		}
	}
	return nil
}

// Pieces returns the player's pieces ordered by type then id.
func (pl *Player) Pieces() []*Piece {
	pieces := make([]*Piece, len(pl.pieces))
	copy(pieces, pl.pieces)
	sort.Slice(pieces, func(i, j int) bool {
		if pieces[i].Type != pieces[j].Type {
			return pieces[i].Type < pieces[j].Type
		}
		return pieces[i].ID < pieces[j].ID
	})
	return pieces
}

// NumPieces returns how many pieces the player still owns.
func (pl *Player) NumPieces() int {
	return len(pl.pieces)
}
