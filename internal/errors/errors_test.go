package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidCoordinate,
		ErrInvalidSetup,
		ErrUnknownPiece,
		ErrInvalidFEN,
		ErrInvalidConfig,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("loading position: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no sentinel matches another
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidCoordinate, ErrInvalidSetup) {
		t.Error("ErrInvalidCoordinate should not match ErrInvalidSetup")
	}
	if errors.Is(ErrUnknownPiece, ErrInvalidCoordinate) {
		t.Error("ErrUnknownPiece should not match ErrInvalidCoordinate")
	}
}

func TestCoordinateError(t *testing.T) {
	err := &CoordinateError{Input: "x9", Err: ErrInvalidCoordinate}

	if !errors.Is(err, ErrInvalidCoordinate) {
		t.Error("errors.Is(err, ErrInvalidCoordinate) = false, want true")
	}
	if msg := err.Error(); !strings.Contains(msg, `"x9"`) {
		t.Errorf("CoordinateError.Error() = %q, should quote the input", msg)
	}

	bare := &CoordinateError{Input: ""}
	if got, want := bare.Error(), `coordinate ""`; got != want {
		t.Errorf("CoordinateError.Error() = %q, want %q", got, want)
	}
}

// TestSetupError_Error verifies the error message format
func TestSetupError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SetupError
		contains []string
	}{
		{
			name: "full context",
			err: &SetupError{
				Err:    ErrUnknownPiece,
				Colour: "BLACK",
				Index:  3,
				Entry:  "QUEEN:d8:1",
			},
			contains: []string{"black setup", "entry 3", "QUEEN:d8:1", "unknown piece type"},
		},
		{
			name: "minimal context",
			err: &SetupError{
				Err: ErrInvalidSetup,
			},
			contains: []string{"setup", "invalid setup"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("SetupError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestSetupError_As verifies that errors.As works with SetupError
func TestSetupError_As(t *testing.T) {
	setupErr := &SetupError{
		Err:    ErrInvalidSetup,
		Colour: "WHITE",
		Index:  2,
	}

	wrapped := fmt.Errorf("new game: %w", setupErr)

	var extracted *SetupError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract SetupError")
	}
	if extracted.Index != 2 {
		t.Errorf("extracted.Index = %d, want 2", extracted.Index)
	}
	if !errors.Is(wrapped, ErrInvalidSetup) {
		t.Error("errors.Is(wrapped, ErrInvalidSetup) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "loading FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidConfig, "flag -%s value %d", "v", 7)

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "flag -v value 7") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
