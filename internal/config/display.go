package config

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// UseColour paints pieces and highlighted squares with ANSI colours
	UseColour bool

	// UseUnicode draws chess symbols instead of piece letters
	UseUnicode bool

	// ShowMoves marks the destinations of the side to move
	ShowMoves bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		UseColour:  true,
		UseUnicode: true,
	}
}
