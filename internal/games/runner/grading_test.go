package runner

import (
	"testing"

	"github.com/vovakirdan/aplus-runner/internal/config"
)

func TestGraderAssess(t *testing.T) {
	g := Grader{LastChapter: 3, SplitSeconds: 30}

	tests := []struct {
		name      string
		chapter   int
		elapsed   int
		first     bool
		completed bool
		grade     Grade
		next      State
		unlock    bool
	}{
		{"ch1 early death first runner", 1, 5, true, false, GradeF, StateRelayPrompt, false},
		{"ch1 late death first runner", 1, 40, true, false, GradeF, StateRelayPrompt, false},
		{"ch1 death second runner", 1, 10, false, false, GradeF, StateGameOver, false},
		{"ch2 early death", 2, 29, true, false, GradeD, StateRelayPrompt, false},
		{"ch2 death at split", 2, 30, true, false, GradeC, StateRelayPrompt, false},
		{"ch2 late death second runner", 2, 44, false, false, GradeC, StateGameOver, false},
		{"ch3 early death", 3, 10, true, false, GradeB, StateRelayPrompt, false},
		{"ch3 late death", 3, 31, false, false, GradeAFail, StateGameOver, false},
		{"ch1 clear", 1, 46, true, true, GradeA, StateChapterSelect, true},
		{"ch2 clear by relay", 2, 46, false, true, GradeA, StateChapterSelect, true},
		{"ch3 clear by first runner", 3, 46, true, true, GradeAPlus, StateGameClear, false},
		{"ch3 clear by relay", 3, 46, false, true, GradeA, StateGameClear, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := g.Assess(tc.chapter, tc.elapsed, tc.first, tc.completed)
			if v.Grade != tc.grade {
				t.Errorf("Grade = %q, expected %q", v.Grade, tc.grade)
			}
			if v.Next != tc.next {
				t.Errorf("Next = %v, expected %v", v.Next, tc.next)
			}
			if v.Unlock != tc.unlock {
				t.Errorf("Unlock = %v, expected %v", v.Unlock, tc.unlock)
			}
		})
	}
}

func TestGradeRankOrder(t *testing.T) {
	order := []Grade{GradeF, GradeD, GradeC, GradeB, GradeAFail, GradeA, GradeAPlus}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("%q ranks %d, not above %q (%d)", order[i], order[i].Rank(), order[i-1], order[i-1].Rank())
		}
	}
	if GradeNone.Rank() != -1 {
		t.Errorf("GradeNone.Rank() = %d, expected -1", GradeNone.Rank())
	}
}

func TestSessionProgress(t *testing.T) {
	s := NewSessionProgress(3)

	if !s.CanSelect(1) || s.CanSelect(2) || s.CanSelect(0) {
		t.Error("fresh session should only allow chapter 1")
	}

	if !s.AddToRoster(CharacterC) {
		t.Fatal("AddToRoster(C) = false")
	}
	if s.AddToRoster(CharacterC) {
		t.Error("duplicate character accepted")
	}
	if s.AddToRoster("Z") {
		t.Error("unknown character accepted")
	}
	if !s.AddToRoster(CharacterF) || !s.RosterFull() {
		t.Fatal("roster should be full after two picks")
	}
	if s.AddToRoster(CharacterA) {
		t.Error("third character accepted")
	}

	if s.Unlock(2) {
		t.Error("clearing a locked chapter unlocked something")
	}
	if !s.Unlock(1) || s.MaxUnlocked != 2 {
		t.Fatalf("Unlock(1): MaxUnlocked = %d, expected 2", s.MaxUnlocked)
	}
	if s.Unlock(1) {
		t.Error("replaying chapter 1 unlocked again")
	}
	s.Unlock(2)
	if s.Unlock(3) || s.MaxUnlocked != 3 {
		t.Errorf("MaxUnlocked = %d, expected cap at 3", s.MaxUnlocked)
	}

	s.ClearRoster()
	if len(s.Roster) != 0 || s.MaxUnlocked != 3 {
		t.Errorf("ClearRoster: roster=%v max=%d", s.Roster, s.MaxUnlocked)
	}

	s.AddToRoster(CharacterA)
	s.Reset()
	if len(s.Roster) != 0 || s.MaxUnlocked != 1 {
		t.Errorf("Reset: roster=%v max=%d", s.Roster, s.MaxUnlocked)
	}
}

func TestRelayHandoff(t *testing.T) {
	ph := newPhysics(config.DefaultRunnerConfig())
	r := newRelay([]CharacterID{CharacterC, CharacterE}, ph, -200, 150)

	if r.ActiveIndex() != 0 || r.Active().Character != CharacterC {
		t.Fatalf("active = %d (%s), expected first runner C", r.ActiveIndex(), r.Active().Character)
	}
	if !r.Second().Dead || r.Second().Rect.X != -200 {
		t.Errorf("second runner should be parked dead at -200, got dead=%v x=%d", r.Second().Dead, r.Second().Rect.X)
	}

	r.First().MarkDead()
	if r.ActiveIndex() != 1 {
		t.Fatalf("ActiveIndex() = %d after first death, expected 1", r.ActiveIndex())
	}

	r.Handoff()
	second := r.Second()
	if second.Dead || !second.Reviving {
		t.Errorf("second runner dead=%v reviving=%v, expected reviving", second.Dead, second.Reviving)
	}
	if second.Rect.X != r.First().Rect.X-150 {
		t.Errorf("second runner x = %d, expected %d", second.Rect.X, r.First().Rect.X-150)
	}
	if second.Character != CharacterE {
		t.Errorf("second runner = %s, expected E", second.Character)
	}
}

func TestCharacterSkills(t *testing.T) {
	tests := map[CharacterID]Skill{
		CharacterA: SkillHighJump,
		CharacterB: SkillBigInvincible,
		CharacterC: SkillSpeedBoost,
		CharacterD: SkillHighJump,
		CharacterE: SkillBigInvincible,
		CharacterF: SkillSpeedBoost,
	}
	for id, want := range tests {
		if got := id.Skill(); got != want {
			t.Errorf("%s.Skill() = %v, expected %v", id, got, want)
		}
	}
	if CharacterID("G").Valid() {
		t.Error("G should not be a valid character")
	}
}
