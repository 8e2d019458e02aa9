package runner

// Grade is the letter awarded when a chapter attempt ends.
type Grade string

const (
	GradeNone  Grade = ""
	GradeF     Grade = "F"
	GradeD     Grade = "D"
	GradeC     Grade = "C"
	GradeB     Grade = "B"
	GradeAFail Grade = "A (Fail)"
	GradeA     Grade = "A"
	GradeAPlus Grade = "A+"
)

// Rank orders grades from worst (0) to best; GradeNone ranks -1.
func (g Grade) Rank() int {
	switch g {
	case GradeF:
		return 0
	case GradeD:
		return 1
	case GradeC:
		return 2
	case GradeB:
		return 3
	case GradeAFail:
		return 4
	case GradeA:
		return 5
	case GradeAPlus:
		return 6
	default:
		return -1
	}
}

// Verdict is the outcome of grading a terminal condition.
type Verdict struct {
	Grade  Grade
	Next   State
	Unlock bool // Whether the completed chapter may unlock the next one
}

// Grader turns a terminal condition into a grade and the next state.
type Grader struct {
	LastChapter  int // Chapter whose clear by the first runner earns A+
	SplitSeconds int // Death after this many seconds grades one step higher
}

// Assess grades a chapter attempt. firstRunner reports whether the runner
// that died or finished is the first of the relay.
func (g Grader) Assess(chapter, elapsedSeconds int, firstRunner, completed bool) Verdict {
	if completed {
		return g.clear(chapter, firstRunner)
	}

	v := Verdict{Grade: g.deathGrade(chapter, elapsedSeconds), Next: StateGameOver}
	if firstRunner {
		v.Next = StateRelayPrompt
	}
	return v
}

func (g Grader) clear(chapter int, firstRunner bool) Verdict {
	if chapter >= g.LastChapter && firstRunner {
		return Verdict{Grade: GradeAPlus, Next: StateGameClear}
	}
	v := Verdict{Grade: GradeA, Next: StateChapterSelect, Unlock: true}
	if chapter >= g.LastChapter {
		v.Next = StateGameClear
	}
	return v
}

func (g Grader) deathGrade(chapter, elapsedSeconds int) Grade {
	late := elapsedSeconds >= g.SplitSeconds
	switch {
	case chapter <= 1:
		return GradeF
	case chapter == 2:
		if late {
			return GradeC
		}
		return GradeD
	default:
		if late {
			return GradeAFail
		}
		return GradeB
	}
}
