package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aplus-runner/internal/core"
	"github.com/vovakirdan/aplus-runner/internal/games/runner"
	"github.com/vovakirdan/aplus-runner/internal/storage"
)

const noticeMs = 3000

// Model is the Bubble Tea model driving one runner game.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	clock      core.Clock
	logger     *log.Logger
	inputFrame core.InputFrame
	slideHold  int64
	lastDown   int64 // Time of the last down press, -1 when none
	notice     string
	noticeEnd  int64
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		clock:      core.NewSystemClock(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		slideHold:  int64(game.Config().Input.SlideHoldMs),
		lastDown:   -1,
	}
	m.screen = core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	return m
}

// playfieldHeight leaves the bottom row for the status line.
func playfieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return 1
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the bound action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionDown {
		m.lastDown = m.clock.NowMillis()
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleMouse converts a left click on the playfield to logical coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() || msg.X >= m.screen.Width() {
		return m, nil
	}

	x, y := m.viewport().ToLogical(msg.X, msg.Y)
	m.inputFrame.Click(x, y)
	return m, nil
}

func (m Model) viewport() core.Viewport {
	cfg := m.game.Config()
	return core.NewViewport(cfg.Screen.Width, cfg.Screen.Height, m.screen.Width(), m.screen.Height())
}

// handleResize rescales the playfield. The logical world is fixed, so the
// game keeps running untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.NowMillis()

	// Terminals report presses, not key state: down counts as held for a
	// short window after the last press.
	m.inputFrame.DownHeld = m.lastDown >= 0 && now-m.lastDown < m.slideHold

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Outcome != nil {
		m.recordOutcome(*result.Outcome, now)
	}
	if m.notice != "" && now >= m.noticeEnd {
		m.notice = ""
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordOutcome stores a finished run. Storage is best-effort; the game
// continues regardless.
func (m *Model) recordOutcome(o runner.Outcome, now int64) {
	rec := RunRecordFromOutcome(o)

	verb := "Run over"
	if o.Cleared {
		verb = "Chapter clear"
	}
	m.notice = fmt.Sprintf("%s: chapter %d, grade %s, %ds, %d ★", verb, o.Chapter, o.Grade, o.ElapsedSeconds, o.Score)
	m.noticeEnd = now + noticeMs

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not save run", "chapter", o.Chapter, "error", err)
	}
}

// RunRecordFromOutcome converts a game outcome into a storage row.
func RunRecordFromOutcome(o runner.Outcome) storage.RunRecord {
	rec := storage.RunRecord{
		Chapter:     o.Chapter,
		Grade:       string(o.Grade),
		GradeRank:   o.Grade.Rank(),
		Cleared:     o.Cleared,
		ElapsedSecs: o.ElapsedSeconds,
		Score:       o.Score,
		FinishedBy:  string(o.FinishedBy),
	}
	if len(o.Roster) > 0 {
		rec.Runner1 = string(o.Roster[0])
	}
	if len(o.Roster) > 1 {
		rec.Runner2 = string(o.Roster[1])
	}
	return rec
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".aplus", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.notice = "Screenshot saved to " + path
	m.noticeEnd = m.clock.NowMillis() + noticeMs
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + renderStatus(m.notice, m.help.View(m.keys), m.config.ScreenW)
}

// Run starts the Bubble Tea program for game.
func Run(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select menu entries and buttons
	)

	_, err := p.Run()
	return err
}
