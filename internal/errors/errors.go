// Package errors provides sentinel errors and error types for dodochess.
// It separates malformed input (coordinates, setups, FEN strings) from
// ordinary gameplay rejections, which are never reported as errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCoordinate indicates text that is not a board coordinate.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidSetup indicates an unusable starting configuration.
	ErrInvalidSetup = errors.New("invalid setup")

	// ErrUnknownPiece indicates a piece type name outside KING, ROOK, BISHOP and KNIGHT.
	ErrUnknownPiece = errors.New("unknown piece type")

	// ErrInvalidFEN indicates a FEN string that cannot be loaded.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CoordinateError reports the text that failed to parse as a coordinate.
type CoordinateError struct {
	Input string // The rejected text
	Err   error  // The underlying error
}

// Error returns a formatted error message including the rejected text.
func (e *CoordinateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("coordinate %q", e.Input)
	}
	return fmt.Sprintf("coordinate %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *CoordinateError) Unwrap() error {
	return e.Err
}

// SetupError wraps errors with starting configuration context: which
// side and which placement entry could not be used.
type SetupError struct {
	Err    error  // The underlying error
	Colour string // Side whose setup failed ("WHITE" or "BLACK")
	Index  int    // 1-based placement index (0 if not applicable)
	Entry  string // The placement text (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *SetupError) Error() string {
	var parts []string

	if e.Colour != "" {
		parts = append(parts, strings.ToLower(e.Colour)+" setup")
	} else {
		parts = append(parts, "setup")
	}

	if e.Index > 0 {
		parts = append(parts, fmt.Sprintf("entry %d", e.Index))
	}

	if e.Entry != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Entry))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SetupError wrapper.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
