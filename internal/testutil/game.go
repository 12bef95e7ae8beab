package testutil

import (
	"testing"

	"github.com/lgbarn/dodochess-go/internal/chess"
	"github.com/lgbarn/dodochess-go/internal/engine"
)

// MustNewGame creates a game from placement lists written as TYPE:square:id,
// e.g. MustNewGame(t, []string{"KING:b7:1"}, []string{"KING:g7:1"}).
// A nil list for both sides yields the default layout.
// It calls t.Fatal if a placement or the setup is rejected.
func MustNewGame(t *testing.T, white, black []string) *engine.Game {
	t.Helper()
	g, err := engine.NewGame(mustPlacements(t, white), mustPlacements(t, black))
	if err != nil {
		t.Fatalf("NewGame(%v, %v) error: %v", white, black, err)
	}
	return g
}

func mustPlacements(t *testing.T, entries []string) []engine.Placement {
	t.Helper()
	if entries == nil {
		return nil
	}
	placements := make([]engine.Placement, 0, len(entries))
	for _, entry := range entries {
		p, err := engine.ParsePlacement(entry)
		if err != nil {
			t.Fatalf("ParsePlacement(%q) error: %v", entry, err)
		}
		placements = append(placements, p)
	}
	return placements
}

// MustMove plays source to dest and fails the test unless it is accepted.
func MustMove(t *testing.T, g *engine.Game, source, dest string) {
	t.Helper()
	ok, err := g.MakeMove(source, dest)
	if err != nil {
		t.Fatalf("MakeMove(%q, %q) error: %v", source, dest, err)
	}
	if !ok {
		t.Fatalf("MakeMove(%q, %q) rejected; want accepted (turn %v, state %v)", source, dest, g.Turn(), g.State())
	}
}

// MustRejectMove plays source to dest and fails the test unless it is
// rejected without an error.
func MustRejectMove(t *testing.T, g *engine.Game, source, dest string) {
	t.Helper()
	ok, err := g.MakeMove(source, dest)
	if err != nil {
		t.Fatalf("MakeMove(%q, %q) error: %v", source, dest, err)
	}
	if ok {
		t.Fatalf("MakeMove(%q, %q) accepted; want rejected", source, dest)
	}
}

// Snapshot is a comparable summary of a game, used to check that a rejected
// move changed nothing.
type Snapshot struct {
	FEN        string
	Turn       chess.Colour
	State      chess.GameState
	WhiteMoves []string
	BlackMoves []string
	WhiteCount int
	BlackCount int
	AtEdge     []chess.Colour
}

// TakeSnapshot captures the observable state of g.
func TakeSnapshot(g *engine.Game) Snapshot {
	return Snapshot{
		FEN:        g.FEN(),
		Turn:       g.Turn(),
		State:      g.State(),
		WhiteMoves: g.Player(chess.White).Moves().Strings(),
		BlackMoves: g.Player(chess.Black).Moves().Strings(),
		WhiteCount: g.Player(chess.White).NumPieces(),
		BlackCount: g.Player(chess.Black).NumPieces(),
		AtEdge:     g.KingsAtEdge(),
	}
}
