package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellCols is the number of terminal columns one grid cell spans.
// Terminal glyphs are roughly twice as tall as wide.
const cellCols = 2

type glyph struct {
	runes [cellCols]rune
	color core.Color
}

var sprites = map[core.Sprite]glyph{
	core.SpriteHead:  {runes: [cellCols]rune{'█', '█'}, color: core.ColorHead},
	core.SpriteBody:  {runes: [cellCols]rune{'▓', '▓'}, color: core.ColorBody},
	core.SpriteApple: {runes: [cellCols]rune{'(', ')'}, color: core.ColorApple},
}

// SpriteCanvas projects world coordinates onto a character screen.
// World y grows upwards, screen rows grow downwards.
type SpriteCanvas struct {
	grid     core.Grid
	screen   *core.Screen
	showGrid bool
}

// NewSpriteCanvas creates a canvas sized to the grid.
func NewSpriteCanvas(grid core.Grid, showGrid bool) *SpriteCanvas {
	return &SpriteCanvas{
		grid:     grid,
		screen:   core.NewScreen(grid.Cols()*cellCols, grid.Rows()),
		showGrid: showGrid,
	}
}

// Begin clears the previous frame and lays down the background grid.
func (c *SpriteCanvas) Begin() {
	c.screen.Clear()
	if !c.showGrid {
		return
	}
	for row, nr := 0, c.grid.Rows(); row < nr; row++ {
		for col, nc := 0, c.grid.Cols(); col < nc; col++ {
			c.screen.SetColored(col*cellCols, row, '·', core.ColorGridLine)
		}
	}
}

// Project converts a world position to a screen column and row.
func (c *SpriteCanvas) Project(x, y int) (col, row int) {
	col = x * cellCols / c.grid.CellSize
	row = c.grid.Rows() - 1 - y/c.grid.CellSize
	return col, row
}

// DrawSprite implements core.Canvas. Positions outside the world are ignored.
func (c *SpriteCanvas) DrawSprite(s core.Sprite, x, y int) {
	g, ok := sprites[s]
	if !ok || !c.grid.Contains(core.Point{X: x, Y: y}) {
		return
	}
	col, row := c.Project(x, y)
	for i, r := range g.runes {
		c.screen.SetColored(col+i, row, r, g.color)
	}
}

// DrawText implements core.Canvas. Text wider than the playfield is
// word-wrapped and the block is centered on the anchor.
func (c *SpriteCanvas) DrawText(text string, x, y int) {
	col, row := c.Project(x, y)
	lines := strings.Split(ansi.Wordwrap(text, c.screen.Width(), ""), "\n")
	top := row - len(lines)/2
	for i, line := range lines {
		c.screen.DrawTextCentered(col, top+i, strings.TrimSpace(line), core.ColorText)
	}
}

// Screen returns the frame buffer.
func (c *SpriteCanvas) Screen() *core.Screen {
	return c.screen
}
