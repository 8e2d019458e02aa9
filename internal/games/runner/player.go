package runner

import (
	"math"

	"github.com/vovakirdan/aplus-runner/internal/config"
	"github.com/vovakirdan/aplus-runner/internal/core"
)

// Pose is what the runner is doing, for sprite selection.
type Pose int

const (
	PoseRun Pose = iota
	PoseJump
	PoseSlide
	PoseDead
)

// physics holds the per-session constants every runner integrates with.
type physics struct {
	gravity          float64
	jumpImpulse      float64
	highJumpImpulse  float64
	maxJumps         int
	landingTolerance int
	edgeMargin       int

	laneX       int
	width       int
	height      int
	slideHeight int
	groundY     int

	effects effectTimer
}

func newPhysics(cfg config.RunnerConfig) *physics {
	return &physics{
		gravity:          cfg.Physics.Gravity,
		jumpImpulse:      cfg.Physics.JumpImpulse,
		highJumpImpulse:  cfg.Physics.HighJumpImpulse,
		maxJumps:         cfg.Physics.MaxJumps,
		landingTolerance: cfg.Physics.LandingTolerance,
		edgeMargin:       cfg.Physics.PlatformEdgeMargin,
		laneX:            cfg.Player.LaneX,
		width:            cfg.Player.Width,
		height:           cfg.Player.Height,
		slideHeight:      cfg.Player.SlideHeight,
		groundY:          cfg.Screen.GroundY,
		effects:          newEffectTimer(cfg.Effects),
	}
}

// laneCenter is the x the runner's centre is pinned to while running.
func (ph *physics) laneCenter() int {
	return ph.laneX + ph.width/2
}

// Player is one runner of the relay.
type Player struct {
	Character CharacterID
	Rect      core.Rect
	VelY      float64

	Jumping  bool
	Sliding  bool
	Dead     bool
	Reviving bool
	Visible  bool

	Jumps     int
	Effect    Effect
	HighJump  HighJump
	SkillUsed bool

	y  float64 // sub-pixel top edge
	ph *physics
}

// newPlayer places a standing runner in the lane.
func newPlayer(id CharacterID, ph *physics) *Player {
	p := &Player{
		Character: id,
		Visible:   true,
		ph:        ph,
	}
	p.setRect(core.NewRect(ph.laneX, ph.groundY-ph.height, ph.width, ph.height))
	return p
}

func (p *Player) setRect(r core.Rect) {
	p.Rect = r
	p.y = float64(r.Y)
}

// Pose returns the current animation pose.
func (p *Player) Pose() Pose {
	switch {
	case p.Dead:
		return PoseDead
	case p.Sliding:
		return PoseSlide
	case p.Jumping:
		return PoseJump
	default:
		return PoseRun
	}
}

// Jump starts a jump or a double jump. It returns false once the jump
// budget is spent.
func (p *Player) Jump() bool {
	if p.Dead || p.Jumps >= p.ph.maxJumps {
		return false
	}
	impulse := p.ph.jumpImpulse
	if p.HighJump.Active {
		impulse = p.ph.highJumpImpulse
	}
	p.VelY = impulse
	p.Jumping = true
	p.Jumps++
	return true
}

// ActivateSkill triggers the character skill, once per chapter.
func (p *Player) ActivateSkill(now int64) bool {
	if p.Dead || p.SkillUsed {
		return false
	}
	p.SkillUsed = true
	switch p.Character.Skill() {
	case SkillHighJump:
		p.HighJump = HighJump{Active: true, End: now + p.ph.effects.duration}
		p.applyEffect(EffectHighJump, now)
	case SkillBigInvincible:
		p.applyEffect(EffectBigInvincible, now)
	case SkillSpeedBoost:
		p.applyEffect(EffectSpeedBoost, now)
	}
	return true
}

// ApplyItem grants the effect of a picked-up item.
func (p *Player) ApplyItem(k ItemKind, now int64) {
	p.applyEffect(k.Effect(), now)
}

func (p *Player) applyEffect(kind EffectKind, now int64) {
	p.Effect = Effect{Kind: kind, Start: now, Duration: p.ph.effects.duration}
	p.Visible = true
}

// DeactivateEffect ends the current effect immediately.
func (p *Player) DeactivateEffect() {
	p.Effect = Effect{}
	p.Visible = true
}

// Invulnerable reports whether obstacle contact is harmless right now.
func (p *Player) Invulnerable() bool {
	return p.Effect.Active()
}

// SpeedMultiplier returns the factor the runner's effect applies to world speed.
func (p *Player) SpeedMultiplier(boost int) int {
	if p.Effect.Kind == EffectSpeedBoost && boost > 1 {
		return boost
	}
	return 1
}

// MarkDead kills the runner. Calling it again has no further effect.
func (p *Player) MarkDead() {
	p.Dead = true
	p.Reviving = false
}

// Park puts a dormant runner off-screen at x, marked dead.
func (p *Player) Park(x int) {
	p.MarkDead()
	p.Rect.X = x
}

// Revive brings the runner back at x on the ground line. It then drifts
// forward into the lane.
func (p *Player) Revive(x int) {
	p.Dead = false
	p.Reviving = true
	p.Sliding = false
	p.setRect(core.NewRect(x, p.ph.groundY-p.ph.height, p.ph.width, p.ph.height))
	p.VelY = 0
	p.Jumping = true
	p.Jumps = 0
	p.Visible = true
	p.HighJump = HighJump{}
	p.DeactivateEffect()
}

// Update advances the runner by one frame. Platforms and pits must already
// be at their post-scroll positions.
func (p *Player) Update(now int64, speed int, downHeld bool, platforms, pits []Entity) {
	if p.Dead {
		p.Rect.X -= speed
		return
	}

	p.updateSlide(downHeld)
	p.integrate(platforms, pits)
	if p.Dead {
		return
	}
	p.updateEffects(now)
	p.updateLane(speed)
}

func (p *Player) updateSlide(downHeld bool) {
	wantSlide := downHeld && (!p.Jumping || p.Sliding)
	switch {
	case wantSlide && !p.Sliding:
		p.Sliding = true
		p.setRect(p.Rect.Resized(p.ph.width, p.ph.slideHeight))
	case !wantSlide && p.Sliding:
		p.Sliding = false
		p.setRect(p.Rect.Resized(p.ph.width, p.ph.height))
	}
}

// integrate applies gravity and resolves landing in order: platform top,
// fatal fall below the ground line, ground or pit, airborne.
func (p *Player) integrate(platforms, pits []Entity) {
	p.VelY += p.ph.gravity
	p.y += p.VelY
	p.Rect.Y = int(math.Round(p.y))

	if p.VelY >= 0 {
		for _, pl := range platforms {
			if p.landsOn(pl.Rect) {
				p.land(pl.Rect.Y)
				return
			}
		}
	}

	switch {
	case p.Rect.Y > p.ph.groundY:
		p.MarkDead()
		p.VelY = 0
	case p.Rect.Bottom() >= p.ph.groundY:
		if p.overPit(pits) {
			p.Jumping = true
			return
		}
		p.land(p.ph.groundY)
	default:
		p.Jumping = true
	}
}

// landsOn reports whether a falling runner touches down on top of the box
// this frame. The box is shrunk by the edge margin on both sides so the
// runner cannot stand on a corner.
func (p *Player) landsOn(top core.Rect) bool {
	bottom := p.Rect.Bottom()
	tolerance := int(math.Ceil(p.VelY)) + p.ph.landingTolerance
	if bottom < top.Y || bottom > top.Y+tolerance {
		return false
	}
	return p.Rect.Right() > top.X+p.ph.edgeMargin && p.Rect.X < top.Right()-p.ph.edgeMargin
}

func (p *Player) overPit(pits []Entity) bool {
	for _, pit := range pits {
		if overlapsHorizontally(p.Rect, pit.Rect) {
			return true
		}
	}
	return false
}

func (p *Player) land(surface int) {
	p.setRect(p.Rect.WithBottom(surface))
	p.VelY = 0
	p.Jumping = false
	p.Jumps = 0
}

func (p *Player) updateEffects(now int64) {
	if p.Effect.Active() {
		visible, expired := p.ph.effects.visibility(p.Effect, now)
		if expired {
			p.DeactivateEffect()
		} else {
			p.Visible = visible
		}
	} else {
		p.Visible = true
	}

	if p.HighJump.Active && now > p.HighJump.End {
		p.HighJump = HighJump{}
	}
}

// updateLane pins the runner to the lane, or drifts a reviving runner
// forward at half the world speed until it reaches the lane.
func (p *Player) updateLane(speed int) {
	lane := p.ph.laneCenter()
	if !p.Reviving {
		p.Rect.X = p.Rect.WithCenterX(lane).X
		return
	}

	drift := speed / 2
	if drift < 1 {
		drift = 1
	}
	cx := p.Rect.CenterX() + drift
	if cx >= lane {
		cx = lane
		p.Reviving = false
	}
	p.Rect.X = p.Rect.WithCenterX(cx).X
}
