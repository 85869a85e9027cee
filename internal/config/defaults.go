package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		World: WorldConfig{
			Width:    224,
			Height:   320,
			CellSize: 32,
		},
		Movement: MovementConfig{
			StepSeconds:      0.25,
			StartDirection:   "up",
			RestartDirection: "right",
		},
		Scoring: ScoringConfig{
			PointsPerApple: 10,
		},
		Display: DisplayConfig{
			ShowGrid:     true,
			GameOverText: "Game Over! Press space to restart!",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
