package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aplus-runner/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	// Tests run without a TTY, so lipgloss emits no colour codes.
	s := core.NewScreen(6, 3)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorOrange)
	s.SetColor(5, 2, '#', core.ColorGray)

	lines := strings.Split(RenderScreen(s), "\n")
	want := []string{"abcd  ", "      ", "     #"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, expected %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want[i])
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).GetForeground(); got != (lipgloss.NoColor{}) {
		t.Errorf("unknown colour got foreground %v", got)
	}
	if got := styleFor(core.ColorOrange).GetForeground(); got != lipgloss.Color("208") {
		t.Errorf("orange foreground = %v, expected 208", got)
	}
}
