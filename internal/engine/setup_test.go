package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/dodochess-go/internal/chess"
	"github.com/lgbarn/dodochess-go/internal/engine"
	"github.com/lgbarn/dodochess-go/internal/errors"
	"github.com/lgbarn/dodochess-go/internal/testutil"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		input   string
		want    engine.Placement
		wantErr error
	}{
		{input: "KING:a1:1", want: engine.Placement{Type: chess.King, Square: "a1", ID: 1}},
		{input: " knight:c2:2 ", want: engine.Placement{Type: chess.Knight, Square: "c2", ID: 2}},
		{input: "Bishop:h8:10", want: engine.Placement{Type: chess.Bishop, Square: "h8", ID: 10}},
		{input: "QUEEN:d1:1", wantErr: errors.ErrUnknownPiece},
		{input: "ROOK:z9:1", wantErr: errors.ErrInvalidCoordinate},
		{input: "ROOK:a2:one", wantErr: errors.ErrInvalidSetup},
		{input: "ROOK:a2", wantErr: errors.ErrInvalidSetup},
		{input: "", wantErr: errors.ErrInvalidSetup},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := engine.ParsePlacement(tt.input)
			if tt.wantErr != nil {
				if !stderrors.Is(err, tt.wantErr) {
					t.Errorf("ParsePlacement(%q) error = %v; want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPlacementString(t *testing.T) {
	for _, p := range engine.DefaultBlackSetup() {
		got, err := engine.ParsePlacement(p.String())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, p, "round trip of %s", p)
	}
	testutil.AssertEqual(t, engine.Placement{Type: chess.Rook, Square: "h2", ID: 1}.String(), "ROOK:h2:1")
}

func TestParsePlacements(t *testing.T) {
	got, err := engine.ParsePlacements("KING:b7:1, ROOK:a2:1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []engine.Placement{
		{Type: chess.King, Square: "b7", ID: 1},
		{Type: chess.Rook, Square: "a2", ID: 1},
	})

	got, err = engine.ParsePlacements("  ")
	testutil.AssertNoError(t, err)
	testutil.AssertNil(t, got)

	_, err = engine.ParsePlacements("KING:b7:1,PAWN:a2:1")
	var setupErr *errors.SetupError
	if !stderrors.As(err, &setupErr) {
		t.Fatalf("ParsePlacements() error = %v; want a *SetupError", err)
	}
	testutil.AssertEqual(t, setupErr.Index, 2, "Index")
	testutil.AssertEqual(t, setupErr.Entry, "PAWN:a2:1", "Entry")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrUnknownPiece), "errors.Is(ErrUnknownPiece)")
}

func TestNewGameSetupErrors(t *testing.T) {
	king := engine.Placement{Type: chess.King, Square: "a1", ID: 1}
	blackKing := engine.Placement{Type: chess.King, Square: "h8", ID: 1}

	tests := []struct {
		name       string
		white      []engine.Placement
		black      []engine.Placement
		wantErr    error
		wantColour string
		wantIndex  int
	}{
		{
			name:       "unknown piece type",
			white:      []engine.Placement{king, {Type: chess.PieceType(9), Square: "b1", ID: 1}},
			black:      []engine.Placement{blackKing},
			wantErr:    errors.ErrUnknownPiece,
			wantColour: "WHITE",
			wantIndex:  2,
		},
		{
			name:       "bad coordinate",
			white:      []engine.Placement{king},
			black:      []engine.Placement{{Type: chess.King, Square: "h9", ID: 1}},
			wantErr:    errors.ErrInvalidCoordinate,
			wantColour: "BLACK",
			wantIndex:  1,
		},
		{
			name:       "overlapping sides",
			white:      []engine.Placement{king},
			black:      []engine.Placement{blackKing, {Type: chess.Rook, Square: "a1", ID: 1}},
			wantErr:    errors.ErrInvalidSetup,
			wantColour: "BLACK",
			wantIndex:  2,
		},
		{
			name:       "duplicate id",
			white:      []engine.Placement{king, {Type: chess.Rook, Square: "a2", ID: 1}, {Type: chess.Rook, Square: "a3", ID: 1}},
			black:      []engine.Placement{blackKing},
			wantErr:    errors.ErrInvalidSetup,
			wantColour: "WHITE",
			wantIndex:  3,
		},
		{
			name:       "no white king",
			white:      []engine.Placement{{Type: chess.Rook, Square: "a2", ID: 1}},
			black:      []engine.Placement{blackKing},
			wantErr:    errors.ErrInvalidSetup,
			wantColour: "WHITE",
		},
		{
			name:       "black side omitted",
			white:      []engine.Placement{king},
			black:      nil,
			wantErr:    errors.ErrInvalidSetup,
			wantColour: "BLACK",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := engine.NewGame(tt.white, tt.black)
			testutil.AssertNil(t, g, "game")
			if !stderrors.Is(err, tt.wantErr) {
				t.Fatalf("NewGame() error = %v; want %v", err, tt.wantErr)
			}
			var setupErr *errors.SetupError
			if !stderrors.As(err, &setupErr) {
				t.Fatalf("NewGame() error = %v; want a *SetupError", err)
			}
			testutil.AssertEqual(t, setupErr.Colour, tt.wantColour, "Colour")
			testutil.AssertEqual(t, setupErr.Index, tt.wantIndex, "Index")
		})
	}
}

func TestDuplicateIDsAcrossTypes(t *testing.T) {
	g := testutil.MustNewGame(t,
		[]string{"KING:a1:1", "ROOK:a2:1", "BISHOP:b1:1", "KNIGHT:c1:1"},
		[]string{"KING:h1:1", "ROOK:h2:1"},
	)
	testutil.AssertEqual(t, g.Player(chess.White).NumPieces(), 4)
	testutil.AssertEqual(t, g.FindPiece(chess.White, chess.Knight, 1).Pos().String(), "c1")
}

func TestCornerKingBlocked(t *testing.T) {
	g := testutil.MustNewGame(t,
		[]string{"KING:h1:1", "KING:g1:2", "KING:g2:3", "KING:h2:4"},
		[]string{"KING:a8:1"},
	)
	moves, err := g.LegalMoves("h1")
	testutil.AssertNoError(t, err)
	testutil.AssertSquares(t, moves, nil, "h1 king")
	testutil.AssertEqual(t, g.Player(chess.White).King().Pos().String(), "h1", "first KING entry is the king")
}
