package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the head plus the chain of body segments trailing it.
type Snake struct {
	grid      core.Grid
	head      core.Point
	direction Direction
	body      Body
	latched   bool // A direction change was accepted since the last move
}

// NewSnake creates a bare head at start heading dir.
func NewSnake(grid core.Grid, start core.Point, dir Direction) *Snake {
	s := &Snake{grid: grid}
	s.Reset(start, dir)
	return s
}

// Reset drops the body and puts the head back at start.
func (s *Snake) Reset(start core.Point, dir Direction) {
	s.head = start
	s.direction = dir
	s.body.Clear()
	s.latched = false
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.head
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Len returns the number of body segments, not counting the head.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Segments returns body positions ordered from the head towards the tail.
// The order holds between ticks only: a segment added by Grow is listed last
// until the next Advance moves it directly behind the head.
func (s *Snake) Segments() []core.Point {
	return s.body.NearestFirst()
}

// RequestDirection asks for a heading change and reports whether the request
// used up this tick's latch. Requests for the current heading are ignored
// without latching. A reversal is rejected while the body is non-empty, but
// it still latches.
func (s *Snake) RequestDirection(d Direction) bool {
	if s.latched || d == s.direction {
		return false
	}
	s.latched = true
	if d == s.direction.Opposite() && s.body.Len() > 0 {
		return true
	}
	s.direction = d
	return true
}

// Advance performs one movement tick: move the head one cell, wrap, pull the
// body along and test for self-collision. It returns the cell the head left.
func (s *Snake) Advance() (prev core.Point, collided bool) {
	prev = s.head
	s.head = s.grid.Wrap(s.head.Add(s.direction.Step(s.grid.CellSize)))

	// The front slot is the tail end; it becomes the segment behind the head.
	s.body.Recycle(prev)

	s.latched = false
	return prev, s.body.Contains(s.head)
}

// Grow adds a segment at p. The new slot is recycled on the next Advance, so
// it lands directly behind the head and the rest of the chain keeps its cells.
func (s *Snake) Grow(p core.Point) {
	s.body.PushFront(p)
}

// Occupies reports whether the head or any segment is on p.
func (s *Snake) Occupies(p core.Point) bool {
	return s.head == p || s.body.Contains(p)
}
