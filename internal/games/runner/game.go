// Package runner implements A+ Runner, a side-scrolling relay runner.
// Two runners share a chapter: the first runs until it dies, then the
// second may take over. Chapters are cleared by surviving a fixed time and
// graded on how far the team got.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aplus-runner/internal/config"
	"github.com/vovakirdan/aplus-runner/internal/core"
)

// Outcome describes a finished chapter attempt, reported once when the run
// reaches GAME_OVER or clears a chapter.
type Outcome struct {
	Chapter        int
	Grade          Grade
	ElapsedSeconds int
	Score          int
	Roster         []CharacterID
	FinishedBy     CharacterID
	Cleared        bool
}

// StepResult is returned by Step after every frame.
type StepResult struct {
	State   State
	Quit    bool
	Outcome *Outcome // Non-nil only on the frame a run ended
}

// Option customises a Game.
type Option func(*Game)

// WithClock replaces the wall clock.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithRand replaces the random source.
func WithRand(r core.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithAudio sets the sound cue player.
func WithAudio(a AudioProvider) Option {
	return func(g *Game) { g.audio = a }
}

// WithAssets sets the art provider used by Render.
func WithAssets(a AssetProvider) Option {
	return func(g *Game) { g.assets = a }
}

// WithLogger sets the logger for state transitions and outcomes.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

type eventHandler func(core.Event)

// Game is the runner state machine and simulation. It is not safe for
// concurrent use; each session owns its own Game.
type Game struct {
	cfg    config.RunnerConfig
	pacing *config.Pacing
	grader Grader
	layout Layout
	ph     *physics

	clock  core.Clock
	rng    core.Rand
	audio  AudioProvider
	assets AssetProvider
	logger *log.Logger

	handlers map[State]eventHandler
	state    State
	progress *SessionProgress
	now      int64 // Frame time, sampled once at the start of Step

	charCursor      int
	chapterCursor   int
	choice          int
	selectedChapter int
	transitionStart int64
	promptStart     int64

	relay          *Relay
	world          *World
	spawner        *Spawner
	chapter        int
	score          int
	grade          Grade
	finisher       CharacterID
	elapsedMs      int64
	elapsedSeconds int
	accel          int
	speed          int
	chapterStart   int64

	// Play clock: frame time minus everything spent paused.
	frozen      bool
	frozenAt    int64
	frozenTotal int64

	quit    bool
	outcome *Outcome
}

// New creates a game on the title screen.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		pacing: config.NewPacing(cfg),
		grader: Grader{
			LastChapter:  cfg.Chapters.Count,
			SplitSeconds: cfg.Chapters.GradeSplitSeconds,
		},
		layout:   NewLayout(cfg.Screen.Width, cfg.Screen.Height, cfg.Chapters.Count),
		ph:       newPhysics(cfg),
		audio:    NopAudio{},
		assets:   GlyphAssets{},
		state:    StateTitle,
		progress: NewSessionProgress(cfg.Chapters.Count),
		world:    NewWorld(cfg.Spawner.MaxEntitiesPerKind),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = core.NewSystemClock()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.spawner = NewSpawner(cfg, g.pacing, g.rng)
	g.chapterCursor = 1
	g.handlers = map[State]eventHandler{
		StateTitle:           g.onTitle,
		StateCharacterSelect: g.onCharacterSelect,
		StateChapterSelect:   g.onChapterSelect,
		StateConfirmStart:    g.onConfirmStart,
		StatePlaying:         g.onPlaying,
		StatePaused:          g.onPaused,
		StateRelayPrompt:     g.onRelayPrompt,
		StateGameOver:        g.onGameOver,
		StateGameClear:       g.onGameClear,
		StateHiddenCredit:    g.onHiddenCredit,
	}
	return g
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Progress returns the session progress.
func (g *Game) Progress() *SessionProgress {
	return g.progress
}

// Layout returns the logical button layout used for click hit-tests.
func (g *Game) Layout() Layout {
	return g.layout
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Step runs one frame: it samples the clock once, dispatches the queued
// events in order to the current state's handler and then advances the
// timed states.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.now = g.clock.NowMillis()
	g.outcome = nil

	for _, ev := range in.Events {
		if g.quit {
			break
		}
		if ev.Action == core.ActionQuit {
			g.requestQuit()
			break
		}
		if h, ok := g.handlers[g.state]; ok {
			h(ev)
		}
	}

	if !g.quit {
		switch g.state {
		case StateLoading:
			g.tickLoading()
		case StatePlaying:
			g.tickPlaying(in.DownHeld)
		case StateRelayPrompt:
			g.tickRelayPrompt()
		}
	}

	return StepResult{State: g.state, Quit: g.quit, Outcome: g.outcome}
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.logger.Debug("state change", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) requestQuit() {
	g.quit = true
	g.logger.Debug("quit requested", "state", g.state)
}

// isAnyInput reports whether the event counts as "press anything".
func isAnyInput(ev core.Event) bool {
	return ev.IsKey() || ev.Action == core.ActionClick
}

// isConfirm reports whether the event is space or enter.
func isConfirm(ev core.Event) bool {
	return ev.Action == core.ActionSkill || ev.Action == core.ActionConfirm
}

func (g *Game) onTitle(ev core.Event) {
	if !isAnyInput(ev) {
		return
	}
	if len(g.progress.Roster) == 0 {
		g.charCursor = 0
		g.setState(StateCharacterSelect)
		return
	}
	g.enterChapterSelect()
}

func (g *Game) onCharacterSelect(ev core.Event) {
	n := len(Characters)
	switch ev.Action {
	case core.ActionLeft, core.ActionUp:
		g.charCursor = (g.charCursor - 1 + n) % n
	case core.ActionRight, core.ActionDown:
		g.charCursor = (g.charCursor + 1) % n
	case core.ActionSkill, core.ActionConfirm:
		g.pickCharacter(Characters[g.charCursor])
	case core.ActionClick:
		if id, ok := g.layout.CharacterAt(ev.X, ev.Y); ok {
			g.charCursor = id.Index()
			g.pickCharacter(id)
		}
	}
}

func (g *Game) pickCharacter(id CharacterID) {
	if g.progress.AddToRoster(id) {
		g.logger.Debug("character picked", "character", id, "roster", len(g.progress.Roster))
	}
	if g.progress.RosterFull() {
		g.enterChapterSelect()
	}
}

func (g *Game) enterChapterSelect() {
	g.chapterCursor = g.progress.MaxUnlocked
	g.setState(StateChapterSelect)
}

func (g *Game) onChapterSelect(ev core.Event) {
	switch ev.Action {
	case core.ActionLeft:
		if g.chapterCursor > 1 {
			g.chapterCursor--
		}
	case core.ActionRight:
		if g.chapterCursor < g.pacing.Chapters() {
			g.chapterCursor++
		}
	case core.ActionSkill, core.ActionConfirm:
		g.selectChapter(g.chapterCursor)
	case core.ActionClick:
		if c, ok := g.layout.ChapterAt(ev.X, ev.Y); ok {
			g.selectChapter(c)
		}
	}
}

func (g *Game) selectChapter(c int) {
	if !g.progress.CanSelect(c) {
		return
	}
	g.selectedChapter = c
	g.chapterCursor = c
	g.choice = ChoiceYes
	g.setState(StateConfirmStart)
}

// moveChoice handles left/up and right/down in two-button dialogs and
// returns whether the event was a navigation key.
func (g *Game) moveChoice(ev core.Event) bool {
	switch ev.Action {
	case core.ActionLeft, core.ActionUp:
		g.choice = ChoiceYes
	case core.ActionRight, core.ActionDown:
		g.choice = ChoiceNo
	default:
		return false
	}
	return true
}

// dialogChoice returns the confirmed choice of a two-button dialog event.
func (g *Game) dialogChoice(ev core.Event) (int, bool) {
	if isConfirm(ev) {
		return g.choice, true
	}
	if ev.Action == core.ActionClick {
		return g.layout.ChoiceAt(ev.X, ev.Y)
	}
	return 0, false
}

func (g *Game) onConfirmStart(ev core.Event) {
	if g.moveChoice(ev) {
		return
	}
	choice, ok := g.dialogChoice(ev)
	if !ok {
		return
	}
	if choice == ChoiceYes {
		g.transitionStart = g.now
		g.setState(StateLoading)
		return
	}
	g.setState(StateChapterSelect)
}

func (g *Game) onPlaying(ev core.Event) {
	switch ev.Action {
	case core.ActionUp:
		if g.relay.Active().Jump() {
			g.audio.Jump()
		}
	case core.ActionSkill:
		active := g.relay.Active()
		if active.ActivateSkill(g.playNow()) {
			g.logger.Debug("skill", "character", active.Character, "skill", active.Character.Skill())
		}
	case core.ActionPause:
		g.freeze()
		g.setState(StatePaused)
	case core.ActionEscape:
		g.requestQuit()
	}
}

func (g *Game) onPaused(ev core.Event) {
	switch ev.Action {
	case core.ActionPause:
		g.thaw()
		g.setState(StatePlaying)
	case core.ActionEscape:
		g.requestQuit()
	}
}

func (g *Game) onRelayPrompt(ev core.Event) {
	if g.moveChoice(ev) {
		return
	}
	choice, ok := g.dialogChoice(ev)
	if !ok {
		return
	}
	if choice == ChoiceYes {
		g.relay.Handoff()
		g.world.ClearTransient()
		g.logger.Debug("relay accepted", "runner", g.relay.Second().Character)
		g.setState(StatePlaying)
		return
	}
	g.endRun()
}

func (g *Game) onGameOver(ev core.Event) {
	if !isConfirm(ev) && !(ev.Action == core.ActionClick && g.layout.RestartAt(ev.X, ev.Y)) {
		return
	}
	g.progress.Reset()
	g.relay = nil
	g.world.Clear()
	g.setState(StateTitle)
}

func (g *Game) onGameClear(ev core.Event) {
	if g.grade == GradeAPlus {
		if isAnyInput(ev) {
			g.setState(StateHiddenCredit)
		}
		return
	}
	if !isConfirm(ev) && !(ev.Action == core.ActionClick && g.layout.RestartAt(ev.X, ev.Y)) {
		return
	}
	g.relay = nil
	g.world.Clear()
	g.enterChapterSelect()
}

func (g *Game) onHiddenCredit(ev core.Event) {
	if !isAnyInput(ev) {
		return
	}
	g.progress.ClearRoster()
	g.setState(StateTitle)
}

func (g *Game) tickLoading() {
	if g.now-g.transitionStart > g.cfg.Transition.DurationMs {
		g.startChapter()
	}
}

func (g *Game) tickRelayPrompt() {
	if g.now-g.promptStart > g.cfg.Relay.PromptTimeoutMs {
		g.logger.Debug("relay prompt timed out")
		g.endRun()
	}
}

// startChapter resets the whole run for the selected chapter.
func (g *Game) startChapter() {
	g.chapter = g.selectedChapter
	g.relay = newRelay(g.progress.Roster, g.ph, g.cfg.Player.ParkX, g.cfg.Player.ReviveOffset)
	g.world.Clear()

	g.frozen = false
	g.frozenTotal = 0
	g.chapterStart = g.playNow()
	g.elapsedMs = 0
	g.elapsedSeconds = 0
	g.score = 0
	g.grade = GradeNone
	g.finisher = ""
	g.accel = g.pacing.BaseSpeed(g.chapter)
	g.speed = g.accel

	g.spawner.Reset(g.chapterStart)
	g.spawner.SeedGround(g.world)
	g.audio.MusicStart()

	g.logger.Info("chapter started", "chapter", g.chapter, "roster", g.progress.Roster)
	g.setState(StatePlaying)
}

// endRun reports the graded attempt and moves to GAME_OVER.
func (g *Game) endRun() {
	g.emitOutcome(false)
	g.setState(StateGameOver)
}

func (g *Game) emitOutcome(cleared bool) {
	roster := make([]CharacterID, len(g.progress.Roster))
	copy(roster, g.progress.Roster)
	g.outcome = &Outcome{
		Chapter:        g.chapter,
		Grade:          g.grade,
		ElapsedSeconds: g.elapsedSeconds,
		Score:          g.score,
		Roster:         roster,
		FinishedBy:     g.finisher,
		Cleared:        cleared,
	}
	g.logger.Info("run finished",
		"chapter", g.chapter,
		"grade", string(g.grade),
		"elapsed", g.elapsedSeconds,
		"score", g.score,
		"cleared", cleared,
	)
}

// playNow returns the play clock: frame time minus time spent frozen.
func (g *Game) playNow() int64 {
	if g.frozen {
		return g.frozenAt - g.frozenTotal
	}
	return g.now - g.frozenTotal
}

func (g *Game) freeze() {
	if !g.frozen {
		g.frozen = true
		g.frozenAt = g.now
	}
}

func (g *Game) thaw() {
	if g.frozen {
		g.frozenTotal += g.now - g.frozenAt
		g.frozen = false
	}
}
