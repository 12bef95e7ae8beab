package config

import (
	"fmt"

	"github.com/lgbarn/dodochess-go/internal/engine"
	"github.com/lgbarn/dodochess-go/internal/errors"
)

// SetupConfig selects the starting position: the default layout, a pair of
// placement lists, or a FEN string.
type SetupConfig struct {
	White []engine.Placement
	Black []engine.Placement
	FEN   string
}

// NewSetupConfig creates a SetupConfig that starts from the default layout.
func NewSetupConfig() *SetupConfig {
	return &SetupConfig{}
}

// Validate checks that at most one way of choosing the position is used.
func (s *SetupConfig) Validate() error {
	if (s.White == nil) != (s.Black == nil) {
		return fmt.Errorf("white and black setups must be given together: %w", errors.ErrInvalidConfig)
	}
	if s.FEN != "" && s.White != nil {
		return fmt.Errorf("FEN and placement setups are mutually exclusive: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// NewGame starts a game from the configured position.
func (s *SetupConfig) NewGame() (*engine.Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.FEN != "" {
		return engine.NewGameFromFEN(s.FEN)
	}
	return engine.NewGame(s.White, s.Black)
}
