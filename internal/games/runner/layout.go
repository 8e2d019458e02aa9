package runner

import "github.com/vovakirdan/aplus-runner/internal/core"

// Button choices in two-button dialogs.
const (
	ChoiceYes = 0
	ChoiceNo  = 1
)

// Layout places the menu buttons on the logical playfield and answers
// click hit-tests against them.
type Layout struct {
	Chapters   []core.Rect // Index 0 is chapter 1
	Characters []core.Rect // Same order as Characters
	Yes        core.Rect
	No         core.Rect
	Restart    core.Rect
}

// NewLayout computes button positions for a w×h playfield.
func NewLayout(w, h, chapters int) Layout {
	l := Layout{}

	// Chapter cards share the width in equal slots.
	const cardW, cardH = 200, 150
	for i := 0; i < chapters; i++ {
		cx := w * (i + 1) / (chapters + 1)
		l.Chapters = append(l.Chapters, centered(cx, h/2, cardW, cardH))
	}

	const charSize, charGap = 100, 40
	total := len(Characters)*charSize + (len(Characters)-1)*charGap
	left := (w - total) / 2
	for i := range Characters {
		x := left + i*(charSize+charGap)
		l.Characters = append(l.Characters, core.NewRect(x, h/2-charSize/2, charSize, charSize))
	}

	const btnW, btnH = 160, 60
	l.Yes = centered(w/2-120, h/2+100, btnW, btnH)
	l.No = centered(w/2+120, h/2+100, btnW, btnH)
	l.Restart = centered(w/2, h/2+150, btnW, btnH)
	return l
}

func centered(cx, cy, w, h int) core.Rect {
	return core.NewRect(cx-w/2, cy-h/2, w, h)
}

// ChapterAt returns the chapter under the point.
func (l Layout) ChapterAt(x, y int) (int, bool) {
	for i, r := range l.Chapters {
		if r.Contains(x, y) {
			return i + 1, true
		}
	}
	return 0, false
}

// CharacterAt returns the character under the point.
func (l Layout) CharacterAt(x, y int) (CharacterID, bool) {
	for i, r := range l.Characters {
		if r.Contains(x, y) {
			return Characters[i], true
		}
	}
	return "", false
}

// ChoiceAt returns ChoiceYes or ChoiceNo for a click on a dialog button.
func (l Layout) ChoiceAt(x, y int) (int, bool) {
	switch {
	case l.Yes.Contains(x, y):
		return ChoiceYes, true
	case l.No.Contains(x, y):
		return ChoiceNo, true
	default:
		return 0, false
	}
}

// RestartAt reports whether the point is on the restart button.
func (l Layout) RestartAt(x, y int) bool {
	return l.Restart.Contains(x, y)
}
