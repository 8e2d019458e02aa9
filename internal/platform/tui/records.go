package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aplus-runner/internal/storage"
)

const maxRecords = 100 // Max runs to load per view

// RecordsKeyMap defines the key bindings for the run history browser.
type RecordsKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevChap   key.Binding
	NextChap   key.Binding
	ToggleView key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevChap, k.NextChap, k.ToggleView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevChap, k.NextChap, k.ToggleView},
		{k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevChap: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev chapter"),
		),
		NextChap: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next chapter"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "best/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel browses the run history: the best runs of one chapter, or
// the most recent runs across all chapters.
type RecordsModel struct {
	store    *storage.Store
	chapters int
	chapter  int
	recent   bool
	runs     []storage.RunRecord
	stats    *storage.ChapterStats
	err      error
	table    table.Model
	help     help.Model
	keys     RecordsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRecordsModel creates a browser starting on chapter (1-based).
func NewRecordsModel(store *storage.Store, chapters, chapter, width, height int) RecordsModel {
	if chapters < 1 {
		chapters = 1
	}
	if chapter < 1 || chapter > chapters {
		chapter = 1
	}

	m := RecordsModel{
		store:    store,
		chapters: chapters,
		chapter:  chapter,
		keys:     DefaultRecordsKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Ch", Width: 3},
		{Title: "Grade", Width: 9},
		{Title: "Time", Width: 5},
		{Title: "★", Width: 5},
		{Title: "Team", Width: 5},
		{Title: "By", Width: 3},
		{Title: "Date", Width: 12},
	}

	height := m.height - 10 // Title, stats, help and borders
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the runs for the current view.
func (m *RecordsModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.recent {
		m.runs, m.err = m.store.RecentRuns(maxRecords)
	} else {
		m.runs, m.err = m.store.BestRuns(m.chapter, maxRecords)
		if m.err == nil {
			m.stats, m.err = m.store.ChapterStats(m.chapter)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RecordsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = RunRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// RunRow formats one run for the table.
func RunRow(rank int, r storage.RunRecord) table.Row {
	grade := r.Grade
	if r.Cleared {
		grade += " ✓"
	}
	date := ""
	if !r.CreatedAt.IsZero() {
		date = r.CreatedAt.Format("Jan 02 15:04")
	}
	return table.Row{
		fmt.Sprintf("%d", rank),
		fmt.Sprintf("%d", r.Chapter),
		grade,
		fmt.Sprintf("%ds", r.ElapsedSecs),
		fmt.Sprintf("%d", r.Score),
		r.Runner1 + "+" + r.Runner2,
		r.FinishedBy,
		date,
	}
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleView):
			m.recent = !m.recent
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.NextChap):
			if !m.recent {
				m.chapter = m.chapter%m.chapters + 1
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevChap):
			if !m.recent {
				m.chapter--
				if m.chapter < 1 {
					m.chapter = m.chapters
				}
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("BEST RUNS - CHAPTER %d", m.chapter)
	if m.recent {
		title = "RECENT RUNS"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(helpBarStyle.Render(line))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RecordsModel) statsLine() string {
	if m.recent || m.stats == nil || m.stats.Attempts == 0 {
		return ""
	}
	return fmt.Sprintf("%d attempts, %d clears, best %s, high score %d, longest %ds",
		m.stats.Attempts, m.stats.Clears, m.stats.BestGrade, m.stats.HighScore, m.stats.LongestRun)
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a chapter to see it here!")
	}
	return m.table.View()
}

// RunRecords runs the history browser until the user quits.
func RunRecords(store *storage.Store, chapters, chapter, width, height int) error {
	model := NewRecordsModel(store, chapters, chapter, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
