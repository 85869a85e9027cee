package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Frames       uint64
	Ticks        uint64 // Movement ticks since the last (re)start
	Score        int
	SnakeLen     int // Body segments, head excluded
	HeadX        int
	HeadY        int
	Dir          Direction
	AppleX       int
	AppleY       int
	ApplePresent bool
	State        SessionState
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	return Snapshot{
		Frames:       g.frames,
		Ticks:        g.ticks,
		Score:        g.score,
		SnakeLen:     g.snake.Len(),
		HeadX:        head.X,
		HeadY:        head.Y,
		Dir:          g.snake.Direction(),
		AppleX:       g.apple.X,
		AppleY:       g.apple.Y,
		ApplePresent: g.appleAvailable,
		State:        g.state,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d, Ticks: %d, Score: %d, State: %s\n", s.Frames, s.Ticks, s.Score, s.State)
	fmt.Fprintf(&b, "Head: (%d, %d) %s, Segments: %d\n", s.HeadX, s.HeadY, s.Dir, s.SnakeLen)
	if s.ApplePresent {
		fmt.Fprintf(&b, "Apple: (%d, %d)\n", s.AppleX, s.AppleY)
	} else {
		b.WriteString("Apple: none\n")
	}
	return b.String()
}
