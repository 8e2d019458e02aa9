package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/aplus-runner/internal/core"
)

// Render draws the current frame scaled onto dst.
func (g *Game) Render(dst *core.Screen) {
	renderSnapshot(dst, g.Snapshot(), g.layout, g.assets)
}

func renderSnapshot(dst *core.Screen, s Snapshot, l Layout, a AssetProvider) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := core.NewViewport(s.ScreenW, s.ScreenH, dst.Width(), dst.Height())

	switch s.State {
	case StateTitle:
		drawTitle(dst, vp, s)
	case StateCharacterSelect:
		drawCharacterSelect(dst, vp, s, l, a)
	case StateChapterSelect:
		drawChapterSelect(dst, vp, s, l)
	case StateConfirmStart:
		drawChapterSelect(dst, vp, s, l)
		drawDialog(dst, vp, l, fmt.Sprintf("Start Chapter %d?", s.SelectedChapter), "", s.Choice)
	case StateLoading:
		drawWipe(dst, vp, s)
	case StatePlaying:
		drawWorld(dst, vp, s, a)
		drawHUD(dst, s)
	case StatePaused:
		drawWorld(dst, vp, s, a)
		drawHUD(dst, s)
		drawBanner(dst, "PAUSED", "Press P to resume, Esc to quit")
	case StateRelayPrompt:
		drawWorld(dst, vp, s, a)
		drawHUD(dst, s)
		drawDialog(dst, vp, l,
			fmt.Sprintf("Grade %s. Pass the baton?", s.Grade),
			fmt.Sprintf("%ds", s.RelaySecondsLeft),
			s.Choice)
	case StateGameOver:
		drawWorld(dst, vp, s, a)
		drawBanner(dst, "GAME OVER", fmt.Sprintf("Chapter %d  Grade %s  Score %d", s.Chapter, s.Grade, s.Score))
		drawButton(dst, vp, l.Restart, "Restart", true)
	case StateGameClear:
		drawWorld(dst, vp, s, a)
		if s.Grade == GradeAPlus {
			drawBanner(dst, "ALL CHAPTERS CLEAR", fmt.Sprintf("Grade %s  Press any key", s.Grade))
			return
		}
		drawBanner(dst, "CHAPTER CLEAR", fmt.Sprintf("Chapter %d  Grade %s  Score %d", s.Chapter, s.Grade, s.Score))
		drawButton(dst, vp, l.Restart, "Continue", true)
	case StateHiddenCredit:
		drawCredits(dst, s)
	}
}

func drawTitle(dst *core.Screen, vp core.Viewport, s Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColor(mid-2, "A+  RUNNER", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(mid, "a relay race against the clock", core.ColorGray)
	dst.DrawTextCentered(mid+2, "Press any key or click to start")
	dst.DrawHLineColor(0, vp.CellY(s.GroundY), dst.Width(), '▀', core.ColorGray)
}

func drawCharacterSelect(dst *core.Screen, vp core.Viewport, s Snapshot, l Layout, a AssetProvider) {
	dst.DrawTextCenteredColor(1, fmt.Sprintf("Choose runner %d of %d", core.Min(len(s.Roster)+1, RosterSize), RosterSize), core.ColorBrightWhite)
	dst.DrawTextCenteredColor(2, "←/→ move  space/enter pick", core.ColorGray)

	for i, id := range Characters {
		if i >= len(l.Characters) {
			break
		}
		r := vp.ToCells(l.Characters[i])
		color := CharacterColor(id)
		border := color
		if i == s.CharacterCursor {
			border = core.ColorBrightWhite
		}
		dst.DrawBoxColor(r, border)

		sprite := a.Runner(id, PoseRun, 0)
		dst.SetColor(r.CenterX(), r.CenterY(), sprite.Glyph, sprite.Color)
		dst.DrawTextColor(r.X+1, r.Y+1, string(id), color)
		if pos := rosterPosition(s.Roster, id); pos > 0 {
			dst.DrawTextColor(r.Right()-3, r.Y+1, fmt.Sprintf("%d", pos), core.ColorBrightGreen)
		}
		label := id.Skill().String()
		dst.DrawTextColor(r.CenterX()-len(label)/2, r.Bottom(), label, core.ColorGray)
	}
}

func rosterPosition(roster []CharacterID, id CharacterID) int {
	for i, c := range roster {
		if c == id {
			return i + 1
		}
	}
	return 0
}

func drawChapterSelect(dst *core.Screen, vp core.Viewport, s Snapshot, l Layout) {
	dst.DrawTextCenteredColor(1, "Select a chapter", core.ColorBrightWhite)
	dst.DrawTextCenteredColor(2, "Team: "+rosterLabel(s.Roster), core.ColorGray)

	for i, card := range l.Chapters {
		ch := i + 1
		r := vp.ToCells(card)
		unlocked := ch <= s.MaxUnlocked
		color := core.ColorGray
		if unlocked {
			color = core.ColorWhite
		}
		if ch == s.ChapterCursor {
			color = core.ColorBrightYellow
		}
		dst.DrawBoxColor(r, color)
		title := fmt.Sprintf("Chapter %d", ch)
		dst.DrawTextColor(r.CenterX()-len(title)/2, r.CenterY()-1, title, color)
		if !unlocked {
			dst.DrawTextColor(r.CenterX()-3, r.CenterY()+1, "LOCKED", core.ColorGray)
		}
	}
}

func rosterLabel(roster []CharacterID) string {
	parts := make([]string, 0, len(roster))
	for _, id := range roster {
		parts = append(parts, fmt.Sprintf("%s (%s)", id, id.Skill()))
	}
	return strings.Join(parts, " → ")
}

func drawDialog(dst *core.Screen, vp core.Viewport, l Layout, question, note string, choice int) {
	mid := dst.Height() / 2
	box := core.NewRect(dst.Width()/6, mid-3, dst.Width()*2/3, 5)
	dst.DrawRectColor(box, ' ', core.ColorDefault)
	dst.DrawBoxColor(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColor(mid-2, question, core.ColorBrightWhite)
	if note != "" {
		dst.DrawTextCenteredColor(mid-1, note, core.ColorYellow)
	}
	drawButton(dst, vp, l.Yes, "Yes", choice == ChoiceYes)
	drawButton(dst, vp, l.No, "No", choice == ChoiceNo)
}

func drawButton(dst *core.Screen, vp core.Viewport, btn core.Rect, label string, selected bool) {
	r := vp.ToCells(btn)
	color := core.ColorGray
	if selected {
		color = core.ColorBrightYellow
	}
	dst.DrawRectColor(r, ' ', core.ColorDefault)
	dst.DrawBoxColor(r, color)
	dst.DrawTextColor(r.CenterX()-len(label)/2, r.CenterY(), label, color)
}

func drawBanner(dst *core.Screen, title, subtitle string) {
	mid := dst.Height() / 2
	w := core.Max(len([]rune(title)), len([]rune(subtitle))) + 6
	box := core.NewRect((dst.Width()-w)/2, mid-3, w, 5)
	dst.DrawRectColor(box, ' ', core.ColorDefault)
	dst.DrawBoxColor(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColor(mid-2, title, core.ColorBrightYellow)
	dst.DrawTextCentered(mid, subtitle)
}

// drawWipe fills every cell whose logical centre lies inside the growing
// circle around the playfield centre.
func drawWipe(dst *core.Screen, vp core.Viewport, s Snapshot) {
	cx, cy := s.ScreenW/2, s.ScreenH/2
	r2 := s.WipeRadius * s.WipeRadius
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			lx, ly := vp.ToLogical(x, y)
			dx, dy := lx-cx, ly-cy
			if dx*dx+dy*dy <= r2 {
				dst.SetColor(x, y, '█', core.ColorGray)
			}
		}
	}
	dst.DrawTextCenteredColor(dst.Height()/2, fmt.Sprintf(" Chapter %d ", s.SelectedChapter), core.ColorBrightWhite)
}

// drawWorld draws the background, every entity and both runners.
func drawWorld(dst *core.Screen, vp core.Viewport, s Snapshot, a AssetProvider) {
	drawBackground(dst, vp, s)

	for _, e := range s.Entities {
		r := vp.ToCells(e.Rect)
		sp := entitySprite(e, a)
		dst.DrawRectColor(r, sp.Glyph, sp.Color)
	}

	for _, rv := range s.Runners {
		if !rv.Visible {
			continue
		}
		sp := a.Runner(rv.Character, rv.Pose, rv.Frame)
		if rv.Effect != EffectNone && rv.Pose != PoseDead {
			sp.Color = a.EffectColor(rv.Effect)
		}
		dst.DrawRectColor(vp.ToCells(rv.Rect), sp.Glyph, sp.Color)
	}
}

func entitySprite(e Entity, a AssetProvider) Sprite {
	switch e.Kind {
	case KindObstacle:
		return a.Obstacle(e.Obstacle, e.Chapter, e.Variant)
	case KindPlatform:
		return a.Platform(e.Platform)
	case KindPit:
		return a.Pit()
	case KindItem:
		return a.Item(e.Item)
	case KindCollectible:
		return a.Collectible()
	case KindSpeedLine:
		return a.SpeedLine()
	default:
		return fallbackSprite(core.ColorWhite)
	}
}

// drawBackground scrolls a sparse star field with chapter progress.
func drawBackground(dst *core.Screen, vp core.Viewport, s Snapshot) {
	horizon := vp.CellY(s.GroundY)
	shift := int(s.Progress * float64(dst.Width()))
	for y := 1; y < horizon; y += 3 {
		for x := 0; x < dst.Width(); x++ {
			if (x+shift+y*7)%23 == 0 {
				dst.SetColor(x, y, '·', core.ColorGray)
			}
		}
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	left := fmt.Sprintf(" Ch %d  %02d/%02ds  ★ %d ", s.Chapter, s.ElapsedSeconds, s.GoalSeconds, s.Score)
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	var right string
	for _, rv := range s.Runners {
		if !rv.Active {
			continue
		}
		skill := "ready"
		if rv.SkillUsed {
			skill = "used"
		}
		right = fmt.Sprintf(" %s  %s: %s ", rv.Character, rv.Character.Skill(), skill)
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorGray)

	// Progress bar along the second row.
	filled := int(s.Progress * float64(dst.Width()))
	dst.DrawHLineColor(0, 1, filled, '━', core.ColorBrightGreen)
}

func drawCredits(dst *core.Screen, s Snapshot) {
	lines := []string{
		"A+",
		"",
		"Every chapter cleared by the first runner.",
		"Team: " + rosterLabel(s.Roster),
		"",
		"Thanks for running.",
		"",
		"Press any key",
	}
	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColor(top+i, line, color)
	}
}
