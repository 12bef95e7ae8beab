package testutil

import (
	"testing"

	"github.com/lgbarn/dodochess-go/internal/chess"
)

func TestMustNewGame_Default(t *testing.T) {
	g := MustNewGame(t, nil, nil)

	AssertEqual(t, g.Turn(), chess.White)
	AssertEqual(t, g.Player(chess.White).NumPieces(), 6)
	AssertEqual(t, g.Player(chess.Black).NumPieces(), 6)
}

func TestMustNewGame_Custom(t *testing.T) {
	g := MustNewGame(t, []string{"KING:b7:1", "ROOK:a1:1"}, []string{"KING:g7:1"})

	AssertEqual(t, g.Player(chess.White).NumPieces(), 2)
	AssertNotNil(t, g.FindPiece(chess.White, chess.Rook, 1))
	AssertNil(t, g.FindPiece(chess.Black, chess.Rook, 1))
}

func TestMustMoveAndReject(t *testing.T) {
	g := MustNewGame(t, nil, nil)

	MustRejectMove(t, g, "f2", "g4") // black piece on white's turn
	MustMove(t, g, "c2", "d4")
	AssertEqual(t, g.Turn(), chess.Black)
}

func TestTakeSnapshot(t *testing.T) {
	g := MustNewGame(t, []string{"KING:b7:1"}, []string{"KING:g7:1"})
	before := TakeSnapshot(g)

	AssertEqual(t, before.FEN, "8/1K4k1/8/8/8/8/8/8 w - - 0 1")
	AssertEqual(t, before.State, chess.InProgress)
	AssertEqual(t, before.WhiteCount, 1)
	AssertEqual(t, len(before.AtEdge), 0)

	MustRejectMove(t, g, "b7", "b5")
	AssertEqual(t, TakeSnapshot(g), before)

	MustMove(t, g, "b7", "b8")
	after := TakeSnapshot(g)
	AssertEqual(t, after.AtEdge, []chess.Colour{chess.White})
	AssertEqual(t, after.Turn, chess.Black)
}
