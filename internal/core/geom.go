// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a position in world units.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Grid describes a world of fixed size quantized into square cells.
// All entity positions are multiples of CellSize.
type Grid struct {
	Width    int // World width in world units
	Height   int // World height in world units
	CellSize int // Side of one cell in world units
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells returns the total number of cells in the grid.
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// CellAt returns the world position of the cell at (col, row).
func (g Grid) CellAt(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Contains returns true if p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap applies toroidal wraparound independently on each axis.
// Leaving on the low side lands on the last cell, leaving on the high side
// lands on 0.
func (g Grid) Wrap(p Point) Point {
	switch {
	case p.X < 0:
		p.X = g.Width - g.CellSize
	case p.X >= g.Width:
		p.X = 0
	}
	switch {
	case p.Y < 0:
		p.Y = g.Height - g.CellSize
	case p.Y >= g.Height:
		p.Y = 0
	}
	return p
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
