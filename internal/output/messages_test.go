package output

import (
	"testing"

	"github.com/lgbarn/dodochess-go/internal/chess"
	"github.com/lgbarn/dodochess-go/internal/engine"
)

func TestStateMessage(t *testing.T) {
	tests := []struct {
		state chess.GameState
		want  string
	}{
		{chess.InProgress, "The next players turn shall begin now..."},
		{chess.WhiteWon, "The White player has won the game!"},
		{chess.BlackWon, "The Black player has won the game!"},
		{chess.Tie, "The game ended in a tie!"},
		{chess.Stalemate, "No more moves! The game is over!"},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := StateMessage(tt.state); got != tt.want {
				t.Errorf("StateMessage(%v) = %q, want %q", tt.state, got, tt.want)
			}
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	if got := RejectionMessage(engine.Accepted); got != "" {
		t.Errorf("RejectionMessage(Accepted) = %q, want empty", got)
	}
	if got := RejectionMessage(engine.RejectedKingAttacked); got != "Invalid move. A King would be in check..." {
		t.Errorf("RejectionMessage(RejectedKingAttacked) = %q", got)
	}
	if got := RejectionMessage(engine.RejectedStalemate); got != StateMessage(chess.Stalemate) {
		t.Errorf("RejectionMessage(RejectedStalemate) = %q", got)
	}

	seen := make(map[string]engine.Outcome)
	for o := engine.RejectedGameOver; o <= engine.RejectedKingAttacked; o++ {
		msg := RejectionMessage(o)
		if msg == "" {
			t.Errorf("RejectionMessage(%v) is empty", o)
		}
		if prev, dup := seen[msg]; dup {
			t.Errorf("RejectionMessage(%v) repeats the message of %v", o, prev)
		}
		seen[msg] = o
	}
}

func TestTurnPrompt(t *testing.T) {
	if got, want := TurnPrompt(chess.Black), "BLACK, it is your turn."; got != want {
		t.Errorf("TurnPrompt(Black) = %q, want %q", got, want)
	}
}
