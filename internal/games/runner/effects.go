package runner

import "github.com/vovakirdan/aplus-runner/internal/config"

// EffectKind is the colour-coded timed effect carried by a runner.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectHighJump
	EffectBigInvincible
	EffectSpeedBoost
)

// String returns the effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectHighJump:
		return "high_jump"
	case EffectBigInvincible:
		return "big_invincible"
	case EffectSpeedBoost:
		return "speed_boost"
	default:
		return "none"
	}
}

// Effect is the single active timed effect of a runner. Applying a new
// effect replaces the old one and restarts the timer; effects never stack.
type Effect struct {
	Kind     EffectKind
	Start    int64
	Duration int64
}

// Active reports whether an effect is running.
func (e Effect) Active() bool {
	return e.Kind != EffectNone
}

// Remaining returns the milliseconds left at now.
func (e Effect) Remaining(now int64) int64 {
	if !e.Active() {
		return 0
	}
	return e.Duration - (now - e.Start)
}

// HighJump is the separate high-jump timer armed by the high-jump skill.
type HighJump struct {
	Active bool
	End    int64
}

// ItemKind is the kind of a power-up item.
type ItemKind int

const (
	ItemInvincibility ItemKind = iota
	ItemDash
)

// String returns the item name.
func (k ItemKind) String() string {
	if k == ItemDash {
		return "dash"
	}
	return "invincibility"
}

// itemKinds lists the items the spawner picks from uniformly.
var itemKinds = []ItemKind{ItemInvincibility, ItemDash}

// Effect returns the effect an item grants on pickup.
func (k ItemKind) Effect() EffectKind {
	if k == ItemDash {
		return EffectSpeedBoost
	}
	return EffectBigInvincible
}

// effectTimer holds the effect timing constants shared by all runners.
type effectTimer struct {
	duration    int64
	blinkWindow int64
	blinkPeriod int64
}

func newEffectTimer(cfg config.EffectsConfig) effectTimer {
	t := effectTimer{
		duration:    cfg.DurationMs,
		blinkWindow: cfg.BlinkWindowMs,
		blinkPeriod: cfg.BlinkPeriodMs,
	}
	if t.blinkPeriod <= 0 {
		t.blinkPeriod = 1
	}
	return t
}

// visibility returns whether an effect that still runs at now should be
// drawn, and whether it has expired. During the final blink window the
// runner flickers with a fixed period.
func (t effectTimer) visibility(e Effect, now int64) (visible, expired bool) {
	remaining := e.Remaining(now)
	switch {
	case remaining <= 0:
		return true, true
	case remaining < t.blinkWindow:
		return (now/t.blinkPeriod)%2 == 0, false
	default:
		return true, false
	}
}
