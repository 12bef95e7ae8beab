package output

import (
	"fmt"

	"github.com/lgbarn/dodochess-go/internal/chess"
	"github.com/lgbarn/dodochess-go/internal/engine"
)

// Fixed messages shown by the terminal front end.
const (
	Introduction = "Welcome to Dodo Chess! White goes first. First king to reach row 8 wins. " +
		"Please enter moves in letter number format such as 'a1', 'b2' etc. " +
		"The white pieces are on the left and black on the right. Have fun!"
	Goodbye      = "The game is over. Thanks for playing!"
	InvalidInput = "Invalid input, please try again..."
)

// TurnPrompt greets the player about to move.
func TurnPrompt(colour chess.Colour) string {
	return fmt.Sprintf("%v, it is your turn.", colour)
}

// StateMessage describes a game state to the players.
func StateMessage(state chess.GameState) string {
	switch state {
	case chess.Tie:
		return "The game ended in a tie!"
	case chess.BlackWon:
		return "The Black player has won the game!"
	case chess.WhiteWon:
		return "The White player has won the game!"
	case chess.Stalemate:
		return "No more moves! The game is over!"
	default:
		return "The next players turn shall begin now..."
	}
}

// RejectionMessage explains why a move request was refused. It returns ""
// for an accepted move.
func RejectionMessage(o engine.Outcome) string {
	switch o {
	case engine.Accepted:
		return ""
	case engine.RejectedGameOver:
		return Goodbye
	case engine.RejectedStalemate:
		return StateMessage(chess.Stalemate)
	case engine.RejectedEmptySquare:
		return "There is no piece on that square, please try again..."
	case engine.RejectedNotYourTurn:
		return "That piece belongs to the other player, please try again..."
	case engine.RejectedKingAttacked:
		return "Invalid move. A King would be in check..."
	default:
		return "That is not a legal move, please try again..."
	}
}
