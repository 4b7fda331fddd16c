package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/platform/braille"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// RenderPanel converts a frame to braille inside a bordered box.
// A nil frame renders as a dark panel of the given pixel size.
func RenderPanel(f *core.Frame, inverted bool, width, height int) string {
	if f == nil {
		f = core.NewFrame(width, height)
	}
	return panelStyle.Render(strings.Join(braille.Lines(f, inverted), "\n"))
}

// panelFootprint returns the terminal size the bordered panel occupies.
func panelFootprint(width, height int) (cols, rows int) {
	cols, rows = braille.Size(width, height)
	return cols + 2, rows + 2
}
