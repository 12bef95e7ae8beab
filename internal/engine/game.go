// Package engine runs a Dodo chess game: turn order, move validation with
// rollback of moves that leave a king attacked, and the race-to-rank-8
// terminal states.
//
// A Game is not safe for concurrent use; callers must serialize access.
package engine

import (
	"fmt"

	"github.com/lgbarn/dodochess-go/internal/chess"
	"github.com/lgbarn/dodochess-go/internal/errors"
)

// Game owns the board and both players.
type Game struct {
	board   *chess.Board
	players [2]*chess.Player
	turn    chess.Colour
	state   chess.GameState

	// Colours whose king reached the edge row, in arrival order.
	kingsAtEdge []chess.Colour

	ply      int
	lastMove *Move
}

// Move is an accepted move.
type Move struct {
	Piece    *chess.Piece
	From     chess.Square
	To       chess.Square
	Captured *chess.Piece // nil if the destination was empty
}

// String returns the move in long algebraic form, e.g. "c2-d4" or "b1xd3".
func (m Move) String() string {
	sep := "-"
	if m.Captured != nil {
		sep = "x"
	}
	return m.From.String() + sep + m.To.String()
}

// NewGame creates a game from the two starting configurations. When both are
// nil the default layout is used. White moves first.
func NewGame(white, black []Placement) (*Game, error) {
	if white == nil && black == nil {
		white, black = DefaultWhiteSetup(), DefaultBlackSetup()
	}
	return newGame(white, black, chess.White)
}

// NewDefaultGame creates a game with the default layout.
func NewDefaultGame() *Game {
	g, err := NewGame(nil, nil)
	if err != nil {
		panic(fmt.Sprintf("engine: default setup rejected: %v", err))
	}
	return g
}

func newGame(white, black []Placement, toMove chess.Colour) (*Game, error) {
	board := chess.NewBoard()

	whitePlayer, err := buildPlayer(chess.White, white, board)
	if err != nil {
		return nil, err
	}
	blackPlayer, err := buildPlayer(chess.Black, black, board)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:   board,
		players: [2]*chess.Player{chess.White: whitePlayer, chess.Black: blackPlayer},
		turn:    toMove,
		state:   chess.InProgress,
	}
	g.recomputeMoves()
	return g, nil
}

// recomputeMoves refreshes both players' move sets against the current board.
func (g *Game) recomputeMoves() {
	for _, pl := range g.players {
		pl.RecomputeMoves(g.board)
	}
}

// State returns the current game state.
func (g *Game) State() chess.GameState {
	return g.state
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// ToMove returns the player holding the turn.
func (g *Game) ToMove() *chess.Player {
	return g.players[g.turn]
}

// Player returns the player of the given colour.
func (g *Game) Player(colour chess.Colour) *chess.Player {
	return g.players[colour]
}

// Board returns a copy of the board grid. Placing or clearing squares on the
// copy does not affect the game; the pieces themselves are shared and must
// not be modified.
func (g *Game) Board() *chess.Board {
	snapshot := *g.board
	return &snapshot
}

// PieceAt returns the piece on coord, or nil if the square is empty.
func (g *Game) PieceAt(coord string) (*chess.Piece, error) {
	sq, err := chess.ParseSquare(coord)
	if err != nil {
		return nil, err
	}
	return g.board.At(sq), nil
}

// LegalMoves returns the cached destinations of the piece on coord. An empty
// square has no moves.
func (g *Game) LegalMoves(coord string) (chess.SquareSet, error) {
	p, err := g.PieceAt(coord)
	if err != nil || p == nil {
		return 0, err
	}
	return p.LegalMoves(), nil
}

// FindPiece looks up a piece still in play by colour, type and id.
func (g *Game) FindPiece(colour chess.Colour, pieceType chess.PieceType, id int) *chess.Piece {
	return g.players[colour].FindPiece(pieceType, id)
}

// KingsAtEdge returns the colours whose king has reached rank 8, in arrival order.
func (g *Game) KingsAtEdge() []chess.Colour {
	colours := make([]chess.Colour, len(g.kingsAtEdge))
	copy(colours, g.kingsAtEdge)
	return colours
}

// Ply returns the number of accepted moves.
func (g *Game) Ply() int {
	return g.ply
}

// LastMove returns the most recent accepted move.
func (g *Game) LastMove() (Move, bool) {
	if g.lastMove == nil {
		return Move{}, false
	}
	return *g.lastMove, true
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return g.board.FEN(g.turn)
}

// parseMove converts a pair of coordinates, reporting the first malformed one.
func parseMove(source, dest string) (chess.Square, chess.Square, error) {
	from, err := chess.ParseSquare(source)
	if err != nil {
		return chess.Square{}, chess.Square{}, errors.Wrap(err, "source")
	}
	to, err := chess.ParseSquare(dest)
	if err != nil {
		return chess.Square{}, chess.Square{}, errors.Wrap(err, "destination")
	}
	return from, to, nil
}
