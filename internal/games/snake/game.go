// Package snake implements the single-screen snake game: a head steered on a
// wrapping grid, a body chain that follows its exact path, apples that grow
// the chain and add score, and game over on self-collision.
package snake

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// SessionState governs which behaviors run each frame.
type SessionState int

const (
	StatePlaying SessionState = iota
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is one snake session.
type Game struct {
	grid         core.Grid
	step         float64 // Movement tick duration in seconds
	points       int
	startDir     Direction
	restartDir   Direction
	gameOverText string

	snake          *Snake
	prevHead       core.Point // Head position before the latest movement tick
	apple          core.Point
	appleAvailable bool
	score          int
	timer          float64 // Seconds until the next movement tick
	state          SessionState

	frames uint64
	ticks  uint64

	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes session events to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New validates cfg and creates a game ready for Init.
func New(cfg config.SnakeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	startDir, err := ParseDirection(cfg.Movement.StartDirection)
	if err != nil {
		return nil, fmt.Errorf("snake: start_direction: %w", err)
	}
	restartDir, err := ParseDirection(cfg.Movement.RestartDirection)
	if err != nil {
		return nil, fmt.Errorf("snake: restart_direction: %w", err)
	}

	grid := cfg.World.Grid()
	g := &Game{
		grid:         grid,
		step:         cfg.Movement.StepSeconds,
		points:       cfg.Scoring.PointsPerApple,
		startDir:     startDir,
		restartDir:   restartDir,
		gameOverText: cfg.Display.GameOverText,
		snake:        NewSnake(grid, core.Point{}, startDir),
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Init starts a fresh session.
func (g *Game) Init(_ *core.Context) {
	g.reset(g.startDir)
	g.logger.Info("session started",
		"grid", fmt.Sprintf("%dx%d", g.grid.Cols(), g.grid.Rows()),
		"step", g.step,
		"direction", g.startDir)
}

// reset puts every piece of session state back to its initial value.
func (g *Game) reset(dir Direction) {
	g.state = StatePlaying
	g.snake.Reset(core.Point{}, dir)
	g.prevHead = core.Point{}
	g.timer = g.step
	g.appleAvailable = false
	g.score = 0
	g.ticks = 0
}

// Update advances the session by delta seconds of wall time.
func (g *Game) Update(ctx *core.Context, delta float64) {
	if delta < 0 {
		delta = 0
	}
	g.frames++

	switch g.state {
	case StatePlaying:
		g.queryInput(ctx.Keys)
		g.updateSnake(delta)
		if g.state != StatePlaying {
			return
		}
		g.checkAppleCollision()
		g.placeApple(ctx.Rand)
	case StateGameOver:
		g.checkForRestart(ctx.Keys)
	}
}

// queryInput forwards the highest-priority held direction to the snake.
func (g *Game) queryInput(keys core.KeySource) {
	for _, p := range directionPriority {
		if keys.Down(p.action) && g.snake.RequestDirection(p.dir) {
			return
		}
	}
}

// updateSnake runs the movement timer and performs a tick when it expires.
func (g *Game) updateSnake(delta float64) {
	g.timer -= delta
	if g.timer > 0 {
		return
	}
	g.timer = g.step
	g.ticks++

	prev, collided := g.snake.Advance()
	g.prevHead = prev
	if collided {
		g.state = StateGameOver
		g.logger.Info("game over",
			"score", g.score,
			"length", g.snake.Len(),
			"ticks", g.ticks)
	}
}

// checkAppleCollision grows the snake when the head sits on the apple.
// The head only reaches a new cell through a tick, so the new segment goes
// on the cell the head just left.
func (g *Game) checkAppleCollision() {
	if !g.appleAvailable || g.apple != g.snake.Head() {
		return
	}
	g.snake.Grow(g.prevHead)
	g.score += g.points
	g.appleAvailable = false
	g.logger.Debug("apple eaten", "score", g.score, "length", g.snake.Len())
}

// placeApple spawns an apple on a random free cell when none is present.
func (g *Game) placeApple(rng core.Rand) {
	if g.appleAvailable {
		return
	}
	if g.snake.Len()+1 >= g.grid.Cells() {
		// No free cell left.
		return
	}
	for {
		p := g.grid.CellAt(rng.Intn(g.grid.Cols()), rng.Intn(g.grid.Rows()))
		if g.snake.Occupies(p) {
			continue
		}
		g.apple = p
		g.appleAvailable = true
		g.logger.Debug("apple placed", "x", p.X, "y", p.Y)
		return
	}
}

// checkForRestart resets the session when the restart key is held.
func (g *Game) checkForRestart(keys core.KeySource) {
	if !keys.Down(core.ActionRestart) {
		return
	}
	g.reset(g.restartDir)
	g.logger.Info("restarted", "direction", g.restartDir)
}

// Draw issues this frame's sprites and text to the canvas.
func (g *Game) Draw(ctx *core.Context) {
	canvas := ctx.Canvas
	head := g.snake.Head()

	canvas.DrawSprite(core.SpriteHead, head.X, head.Y)
	for _, p := range g.snake.Segments() {
		if !segmentVisible(p, head) {
			continue
		}
		canvas.DrawSprite(core.SpriteBody, p.X, p.Y)
	}
	if g.appleAvailable {
		canvas.DrawSprite(core.SpriteApple, g.apple.X, g.apple.Y)
	}

	switch g.state {
	case StatePlaying:
		canvas.DrawText(strconv.Itoa(g.score), g.grid.Width/2, 4*g.grid.Height/5)
	case StateGameOver:
		canvas.DrawText(g.gameOverText, g.grid.Width/2, g.grid.Height/2)
	}
}

// segmentVisible hides a segment that shares the head's cell.
func segmentVisible(segment, head core.Point) bool {
	return segment != head
}

// State returns the session state.
func (g *Game) State() SessionState {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Snake returns the snake model.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Apple returns the apple position and whether it is present.
func (g *Game) Apple() (core.Point, bool) {
	return g.apple, g.appleAvailable
}

// Grid returns the playfield geometry.
func (g *Game) Grid() core.Grid {
	return g.grid
}
