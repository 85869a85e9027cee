package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// chromeRows is the number of terminal rows used around the board:
// title, two border rows, status and help.
const chromeRows = 5

// Model is the Bubble Tea model that drives a snake session.
type Model struct {
	game     *snake.Game
	ctx      *core.Context
	input    core.InputFrame
	canvas   *SpriteCanvas
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	lastTick time.Time
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, showGrid bool, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := core.NewInputFrame()
	canvas := NewSpriteCanvas(game.Grid(), showGrid)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		ctx:    core.NewContext(input, canvas, rand.New(rand.NewSource(cfg.Seed))),
		input:  input,
		canvas: canvas,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Init(m.ctx)
	m.logger.Info("host started", "fps", m.config.TickRate, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records held keys for the next frame.
// Terminals report presses only, so a key counts as down for the frame
// that follows its press (and its auto-repeats).
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + filepath.Base(path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		snap := m.game.Snapshot()
		m.logger.Info("host stopped", "score", snap.Score, "state", snap.State, "frames", snap.Frames)
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := frameDelta(m.lastTick, now)
	m.lastTick = now

	before := m.game.State()
	m.game.Update(m.ctx, delta)
	if after := m.game.State(); after != before {
		m.status = ""
		if after == snake.StateGameOver {
			m.logger.Debug("final state", "snapshot", m.game.DebugState())
		}
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// boardSize returns the terminal footprint of the bordered board.
func (m Model) boardSize() (int, int) {
	s := m.canvas.Screen()
	return s.Width() + 2, s.Height() + chromeRows
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.canvas.Begin()
	m.game.Draw(m.ctx)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.boardSize()
	if m.config.ScreenW < needW || m.config.ScreenH < needH {
		return RenderTooSmall(needW, needH, m.config.ScreenW, m.config.ScreenH)
	}

	m.canvas.Begin()
	m.game.Draw(m.ctx)

	return RenderFrame(m.game.Title(), m.canvas.Screen(), m.status, m.help.View(m.keys), m.config.ScreenW, m.config.ScreenH)
}

// Run starts the Bubble Tea program for the game.
func Run(game *snake.Game, showGrid bool, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, showGrid, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
