package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aplus-runner/internal/core"
)

// cellStyles holds one lipgloss style per palette colour, indexed by core.Color.
var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	colors := core.Colors()
	styles := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		styles[i] = lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

var (
	helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// renderStatus draws the line under the playfield: a transient notice when
// one is pending, otherwise the key help.
func renderStatus(notice, help string, width int) string {
	if notice != "" {
		return noticeStyle.MaxWidth(width).Render(notice)
	}
	return helpBarStyle.MaxWidth(width).Render(help)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is emitted as runs of same-coloured cells so a frame costs one
// escape sequence per colour change rather than per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, &run, s, y)
	}
	return sb.String()
}

func renderRow(sb, run *strings.Builder, s *core.Screen, y int) {
	run.Reset()
	current := core.ColorDefault
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(styleFor(current).Render(run.String()))
		run.Reset()
	}

	for x := 0; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			flush()
			current = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}
