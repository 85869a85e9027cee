package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps cell color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorHead:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBody:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorApple:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGridLine: lipgloss.NewStyle().Foreground(lipgloss.Color("#6DFF6D")).Faint(true),
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, n := 0, s.Height(); y < n; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderFrame lays out the title, bordered board, status line and help
// centered in a width x height terminal.
func RenderFrame(title string, board *core.Screen, status, help string, width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(strings.ToUpper(title)),
		boardStyle.Render(RenderScreen(board)),
		statusStyle.Render(status),
		help,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// RenderTooSmall returns the message shown when the terminal cannot fit the board.
func RenderTooSmall(needW, needH, width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Window too small"),
		statusStyle.Render(fmt.Sprintf("Resize to at least %dx%d", needW, needH)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
