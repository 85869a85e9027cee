// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Validation errors. Returned wrapped with the offending values.
var (
	ErrInvalidGrid      = errors.New("config: invalid grid")
	ErrInvalidTiming    = errors.New("config: invalid movement timing")
	ErrInvalidScoring   = errors.New("config: invalid scoring")
	ErrInvalidDirection = errors.New("config: invalid direction")
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	World    WorldConfig    `yaml:"world"`
	Movement MovementConfig `yaml:"movement"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Display  DisplayConfig  `yaml:"display"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// MovementConfig defines the movement tick and starting heading.
type MovementConfig struct {
	StepSeconds      float64 `yaml:"step_seconds"`      // Duration of one movement tick
	StartDirection   string  `yaml:"start_direction"`   // Heading of a new session
	RestartDirection string  `yaml:"restart_direction"` // Heading after a restart
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PointsPerApple int `yaml:"points_per_apple"`
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	ShowGrid     bool   `yaml:"show_grid"`
	GameOverText string `yaml:"game_over_text"`
}

// Grid returns the world as a core.Grid.
func (w WorldConfig) Grid() core.Grid {
	return core.Grid{Width: w.Width, Height: w.Height, CellSize: w.CellSize}
}

// Validate checks construction-time invariants of the world, timing and
// scoring. Headings are checked when the game parses them.
func (c SnakeConfig) Validate() error {
	w := c.World
	if w.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidGrid, w.CellSize)
	}
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidGrid, w.Width, w.Height)
	}
	if w.Width%w.CellSize != 0 || w.Height%w.CellSize != 0 {
		return fmt.Errorf("%w: %dx%d is not a multiple of cell_size %d",
			ErrInvalidGrid, w.Width, w.Height, w.CellSize)
	}

	if c.Movement.StepSeconds <= 0 {
		return fmt.Errorf("%w: step_seconds must be positive, got %g", ErrInvalidTiming, c.Movement.StepSeconds)
	}

	if c.Scoring.PointsPerApple < 0 {
		return fmt.Errorf("%w: points_per_apple must not be negative, got %d",
			ErrInvalidScoring, c.Scoring.PointsPerApple)
	}
	return nil
}
