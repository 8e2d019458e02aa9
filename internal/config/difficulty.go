package config

// Pacing derives chapter speed and spawn cadence from elapsed chapter time.
// Difficulty only rises through these documented steps: a per-chapter base
// speed, one time boost late in the chapter and speed-keyed delay bands.
type Pacing struct {
	chapters ChaptersConfig
	bands    []DelayBand
}

// NewPacing creates a pacing calculator for the given config.
func NewPacing(cfg RunnerConfig) *Pacing {
	return &Pacing{
		chapters: cfg.Chapters,
		bands:    cfg.Spawner.DelayBands,
	}
}

// Chapters returns the number of playable chapters.
func (p *Pacing) Chapters() int {
	return p.chapters.Count
}

// BaseSpeed returns the scroll speed a chapter starts at. Out-of-range
// chapters are clamped to the nearest configured one.
func (p *Pacing) BaseSpeed(chapter int) int {
	if len(p.chapters.BaseSpeeds) == 0 {
		return 1
	}
	idx := chapter - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.chapters.BaseSpeeds) {
		idx = len(p.chapters.BaseSpeeds) - 1
	}
	return p.chapters.BaseSpeeds[idx]
}

// Speed returns the accelerated speed: base speed plus the time boost once
// the chapter has run longer than the boost threshold.
func (p *Pacing) Speed(chapter, elapsedSeconds int) int {
	speed := p.BaseSpeed(chapter)
	if elapsedSeconds > p.chapters.BoostAfterSeconds {
		speed += p.chapters.TimeBoost
	}
	return speed
}

// Progress returns how far through the chapter goal the elapsed time is, in [0, 1].
func (p *Pacing) Progress(elapsedSeconds int) float64 {
	if p.chapters.GoalSeconds <= 0 {
		return 1
	}
	return clampF(float64(elapsedSeconds)/float64(p.chapters.GoalSeconds), 0, 1)
}

// GoalReached reports whether the chapter is complete.
func (p *Pacing) GoalReached(elapsedSeconds int) bool {
	return elapsedSeconds > p.chapters.GoalSeconds
}

// SpawnDelayRange returns the inclusive [min, max] delay in milliseconds
// before the next spawn event at the given accelerated speed.
func (p *Pacing) SpawnDelayRange(speed int) (int, int) {
	for _, b := range p.bands {
		if b.BelowSpeed == 0 || speed < b.BelowSpeed {
			return b.MinMs, b.MaxMs
		}
	}
	if n := len(p.bands); n > 0 {
		return p.bands[n-1].MinMs, p.bands[n-1].MaxMs
	}
	return 0, 0
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
