package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
	}
}

// Step returns the one-cell move for this heading.
// World y grows upwards, so DirUp adds to Y.
func (d Direction) Step(cellSize int) core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: cellSize}
	case DirDown:
		return core.Point{Y: -cellSize}
	case DirLeft:
		return core.Point{X: -cellSize}
	case DirRight:
		return core.Point{X: cellSize}
	default:
		panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config value into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirUp, fmt.Errorf("%w: %q", config.ErrInvalidDirection, s)
	}
}

// directionPriority is the order held keys are considered in each frame.
// The first key whose heading differs from the current one is the frame's
// single direction request.
var directionPriority = [...]struct {
	action core.Action
	dir    Direction
}{
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
}
