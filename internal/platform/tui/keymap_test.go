package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/aplus-runner/internal/core"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runes("s"), core.ActionDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSkill},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p", runes("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionEscape},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
		{"screenshot is not a game action", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		for _, b := range col {
			if b.Help().Key == "" {
				t.Errorf("binding %v has no help key", b.Keys())
			}
			total++
		}
	}
	if total != 10 {
		t.Errorf("FullHelp lists %d bindings, expected 10", total)
	}
}
