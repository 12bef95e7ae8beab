package engine

import "github.com/lgbarn/dodochess-go/internal/chess"

// Outcome is the result of a move request. Every value other than Accepted
// is an ordinary rejection, not an error.
type Outcome int

const (
	Accepted Outcome = iota
	RejectedGameOver
	RejectedStalemate
	RejectedEmptySquare
	RejectedNotYourTurn
	RejectedIllegalDestination
	RejectedKingAttacked
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	names := []string{
		"accepted",
		"game over",
		"stalemate",
		"empty square",
		"not your turn",
		"illegal destination",
		"king attacked",
	}
	if o >= 0 && int(o) < len(names) {
		return names[o]
	}
	return "unknown"
}

// OK reports whether the move was accepted.
func (o Outcome) OK() bool {
	return o == Accepted
}

// MakeMove moves the piece on source to dest for the player holding the turn.
// It returns true if the move was accepted, including a move that ends the
// game, and false for any rejection. An error is returned only when a
// coordinate is malformed.
func (g *Game) MakeMove(source, dest string) (bool, error) {
	if g.state.IsTerminal() {
		return false, nil
	}
	from, to, err := parseMove(source, dest)
	if err != nil {
		return false, err
	}
	return g.Play(from, to).OK(), nil
}

// Play is MakeMove on parsed squares, reporting why a move was rejected.
//
// A player to move with no destinations at all ends the game in stalemate;
// the request itself is rejected. Otherwise the move is applied tentatively
// and rolled back if either king is left on a square the other side attacks.
func (g *Game) Play(from, to chess.Square) Outcome {
	if g.state.IsTerminal() {
		return RejectedGameOver
	}

	mover := g.players[g.turn]
	if !mover.HasMoves() {
		g.state = chess.Stalemate
		return RejectedStalemate
	}

	piece := g.board.At(from)
	switch {
	case piece == nil:
		return RejectedEmptySquare
	case piece.Colour != g.turn:
		return RejectedNotYourTurn
	case !piece.LegalMoves().Has(to):
		return RejectedIllegalDestination
	}

	rec := g.apply(piece, to)
	if g.kingAttacked(rec) {
		g.undo(rec)
		return RejectedKingAttacked
	}

	g.ply++
	g.lastMove = &Move{Piece: piece, From: rec.from, To: rec.to, Captured: rec.captured}
	g.resolve()
	return Accepted
}

// moveRecord is what apply changed, enough for undo to restore it exactly.
type moveRecord struct {
	piece    *chess.Piece
	from     chess.Square
	to       chess.Square
	captured *chess.Piece
}

// apply relocates piece to dest, capturing any occupant, and recomputes
// both players' move sets against the new board.
func (g *Game) apply(piece *chess.Piece, dest chess.Square) moveRecord {
	rec := moveRecord{
		piece:    piece,
		from:     piece.Pos(),
		to:       dest,
		captured: g.board.At(dest),
	}

	g.board.Clear(rec.from)
	if rec.captured != nil {
		g.players[rec.captured.Colour].RemovePiece(rec.captured)
		g.board.Clear(rec.to)
	}
	piece.SetPos(rec.to)
	g.board.Place(piece)

	g.recomputeMoves()
	return rec
}

// undo reverses apply: the mover returns to its source, the captured piece
// (if any) returns to the destination and to its owner.
func (g *Game) undo(rec moveRecord) {
	g.board.Clear(rec.to)
	rec.piece.SetPos(rec.from)
	g.board.Place(rec.piece)

	if rec.captured != nil {
		rec.captured.SetPos(rec.to)
		g.board.Place(rec.captured)
		g.players[rec.captured.Colour].AddPiece(rec.captured)
	}

	// Legality and stalemate checks read these sets on the next request.
	g.recomputeMoves()
}

// kingAttacked reports whether either king stands on a square in the other
// side's move set. Capturing a king counts as leaving it attacked.
func (g *Game) kingAttacked(rec moveRecord) bool {
	if rec.captured != nil && rec.captured == g.players[rec.captured.Colour].King() {
		return true
	}
	for _, colour := range chess.Colours {
		king := g.players[colour].King()
		if g.players[colour.Opposite()].Attacks(king.Pos()) {
			return true
		}
	}
	return false
}

// resolve records edge arrival for the mover, settles terminal states and
// passes the turn if the game goes on.
func (g *Game) resolve() {
	mover := g.turn
	onEdge := g.players[mover].King().Pos().Row == chess.EdgeRow
	if onEdge && !g.reachedEdge(mover) {
		g.kingsAtEdge = append(g.kingsAtEdge, mover)
	}

	switch {
	case len(g.kingsAtEdge) == 2:
		g.state = chess.Tie
	case len(g.kingsAtEdge) == 1 && !onEdge:
		g.state = chess.WonBy(g.kingsAtEdge[0])
	}

	if g.state == chess.InProgress {
		g.turn = mover.Opposite()
	}
}

func (g *Game) reachedEdge(colour chess.Colour) bool {
	for _, c := range g.kingsAtEdge {
		if c == colour {
			return true
		}
	}
	return false
}
