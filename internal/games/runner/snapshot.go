package runner

import "github.com/vovakirdan/aplus-runner/internal/core"

// RunnerView is the drawable state of one runner.
type RunnerView struct {
	Character CharacterID
	Rect      core.Rect
	Pose      Pose
	Frame     int
	Visible   bool
	Effect    EffectKind
	Active    bool
	SkillUsed bool
	Reviving  bool
}

// Snapshot is a read-only view of everything the renderer and HUD need.
type Snapshot struct {
	State   State
	ScreenW int
	ScreenH int
	GroundY int

	Chapter        int
	Chapters       int
	ElapsedMs      int64
	ElapsedSeconds int
	GoalSeconds    int
	Progress       float64 // 0..1 through the chapter, drives the background
	Score          int
	Speed          int
	Grade          Grade

	Runners  []RunnerView
	Entities []Entity

	Roster          []CharacterID
	MaxUnlocked     int
	CharacterCursor int
	ChapterCursor   int
	SelectedChapter int
	Choice          int

	RelaySecondsLeft int
	WipeRadius       int
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:           g.state,
		ScreenW:         g.cfg.Screen.Width,
		ScreenH:         g.cfg.Screen.Height,
		GroundY:         g.cfg.Screen.GroundY,
		Chapter:         g.chapter,
		Chapters:        g.pacing.Chapters(),
		ElapsedMs:       g.elapsedMs,
		ElapsedSeconds:  g.elapsedSeconds,
		GoalSeconds:     g.cfg.Chapters.GoalSeconds,
		Progress:        g.pacing.Progress(g.elapsedSeconds),
		Score:           g.score,
		Speed:           g.speed,
		Grade:           g.grade,
		Roster:          append([]CharacterID(nil), g.progress.Roster...),
		MaxUnlocked:     g.progress.MaxUnlocked,
		CharacterCursor: g.charCursor,
		ChapterCursor:   g.chapterCursor,
		SelectedChapter: g.selectedChapter,
		Choice:          g.choice,
	}

	if g.state == StateRelayPrompt {
		left := g.cfg.Relay.PromptTimeoutMs - (g.now - g.promptStart)
		if left < 0 {
			left = 0
		}
		s.RelaySecondsLeft = int((left + 999) / 1000)
	}
	if g.state == StateLoading {
		s.WipeRadius = g.wipeRadius()
	}

	g.world.Each(func(e Entity) {
		s.Entities = append(s.Entities, e)
	})

	if g.relay != nil {
		frame := 0
		if g.cfg.Player.RunFrameMs > 0 {
			frame = int(g.playNow()/int64(g.cfg.Player.RunFrameMs)) % len(runFrames)
		}
		activeIdx := g.relay.ActiveIndex()
		for i, p := range g.relay.Runners() {
			s.Runners = append(s.Runners, RunnerView{
				Character: p.Character,
				Rect:      p.Rect,
				Pose:      p.Pose(),
				Frame:     frame,
				Visible:   p.Visible,
				Effect:    p.Effect.Kind,
				Active:    i == activeIdx,
				SkillUsed: p.SkillUsed,
				Reviving:  p.Reviving,
			})
		}
	}
	return s
}

// wipeRadius is the radius of the loading wipe, growing linearly over the
// transition.
func (g *Game) wipeRadius() int {
	d := g.cfg.Transition.DurationMs
	if d <= 0 {
		return 0
	}
	t := float64(g.now-g.transitionStart) / float64(d)
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	return int(t * float64(g.cfg.Screen.Width) * g.cfg.Transition.RadiusFraction)
}
