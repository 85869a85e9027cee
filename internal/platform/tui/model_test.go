package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()

	game, err := snake.New(config.DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	m := NewModel(game, true, cfg, nil)
	m.Init()
	return m, game
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(100, 0)

	if d := frameDelta(time.Time{}, t0); d != 0 {
		t.Errorf("first frame delta = %g, expected 0", d)
	}
	if d := frameDelta(t0, t0.Add(100*time.Millisecond)); d != 0.1 {
		t.Errorf("delta = %g, expected 0.1", d)
	}
	if d := frameDelta(t0, t0.Add(-time.Second)); d != 0 {
		t.Errorf("backwards clock delta = %g, expected 0", d)
	}
	if d := frameDelta(t0, t0.Add(5*time.Second)); d != maxFrameDelta {
		t.Errorf("stalled frame delta = %g, expected %g", d, maxFrameDelta)
	}
}

func TestTicksDriveMovement(t *testing.T) {
	m, game := newTestModel(t)
	t0 := time.Unix(100, 0)

	m, cmd := send(t, m, TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if game.Snake().Head() != (core.Point{}) {
		t.Fatalf("first tick should not move the head, got %+v", game.Snake().Head())
	}

	send(t, m, TickMsg(t0.Add(250*time.Millisecond)))
	if game.Snake().Head() != (core.Point{X: 0, Y: 32}) {
		t.Errorf("head = %+v, expected (0,32) after one step", game.Snake().Head())
	}
}

func TestKeyHeldForOneFrame(t *testing.T) {
	m, game := newTestModel(t)
	t0 := time.Unix(100, 0)

	m, _ = send(t, m, runeKey('a'))
	if !m.input.Has(core.ActionLeft) {
		t.Fatal("key press should mark Left as held")
	}

	m, _ = send(t, m, TickMsg(t0))
	if game.Snake().Direction() != snake.DirLeft {
		t.Errorf("direction = %s, expected left", game.Snake().Direction())
	}
	if m.input.Has(core.ActionLeft) {
		t.Error("held keys should be cleared after the frame")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "SNAKE") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help footer")
	}
	if !strings.Contains(view, "█") {
		t.Error("view should contain the head sprite")
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if view := m.View(); !strings.Contains(view, "too small") {
		t.Errorf("tiny terminal should show the resize hint, got %q", view)
	}
}

func TestSpriteCanvasProjection(t *testing.T) {
	grid := core.Grid{Width: 224, Height: 320, CellSize: 32}
	c := NewSpriteCanvas(grid, false)

	if c.Screen().Width() != 14 || c.Screen().Height() != 10 {
		t.Fatalf("screen = %dx%d, expected 14x10", c.Screen().Width(), c.Screen().Height())
	}

	c.Begin()
	c.DrawSprite(core.SpriteHead, 0, 0)
	c.DrawSprite(core.SpriteApple, 192, 288)

	// World origin is the bottom-left corner.
	if cell := c.Screen().GetCell(0, 9); cell.Rune != '█' || cell.Color != core.ColorHead {
		t.Errorf("head cell = %+v, expected green block at bottom-left", cell)
	}
	if c.Screen().GetCell(12, 0).Rune != '(' || c.Screen().GetCell(13, 0).Rune != ')' {
		t.Errorf("apple should be at the top-right, row 0 = %q", c.Screen().Row(0))
	}
}

func TestSpriteCanvasIgnoresOffWorldSprites(t *testing.T) {
	grid := core.Grid{Width: 64, Height: 64, CellSize: 32}
	c := NewSpriteCanvas(grid, false)
	c.Begin()

	// y = -16 would truncate onto the bottom row if projected.
	c.DrawSprite(core.SpriteApple, 0, -16)
	c.DrawSprite(core.SpriteApple, 64, 0)

	if out := c.Screen().String(); out != "    \n    " {
		t.Errorf("off-world sprites should not be drawn, screen = %q", out)
	}
}

func TestSpriteCanvasGrid(t *testing.T) {
	grid := core.Grid{Width: 64, Height: 64, CellSize: 32}
	c := NewSpriteCanvas(grid, true)
	c.Begin()

	if c.Screen().String() != "· · \n· · " {
		t.Errorf("grid overlay = %q", c.Screen().String())
	}
}

func TestSpriteCanvasTextWraps(t *testing.T) {
	grid := core.Grid{Width: 224, Height: 320, CellSize: 32}
	c := NewSpriteCanvas(grid, false)
	c.Begin()

	c.DrawText("Game Over! Press space to restart!", 112, 160)

	var lines []string
	for y, n := 0, c.Screen().Height(); y < n; y++ {
		if row := strings.TrimSpace(c.Screen().Row(y)); row != "" {
			lines = append(lines, row)
		}
	}
	if strings.Join(lines, " ") != "Game Over! Press space to restart!" {
		t.Errorf("wrapped text lines = %q", lines)
	}
	for _, l := range lines {
		if len([]rune(l)) > 14 {
			t.Errorf("line %q is wider than the board", l)
		}
	}
}
