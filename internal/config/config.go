// Package config provides YAML-based configuration for the runner and the
// chapter pacing rules derived from it.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains every tunable constant of the runner. All distances
// are logical pixels, all durations milliseconds.
type RunnerConfig struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Chapters    ChaptersConfig    `yaml:"chapters"`
	Effects     EffectsConfig     `yaml:"effects"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Relay       RelayConfig       `yaml:"relay"`
	Transition  TransitionConfig  `yaml:"transition"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Input       InputConfig       `yaml:"input"`
}

// ScreenConfig defines the logical playfield.
type ScreenConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"` // Ground line, measured from the top
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	HighJumpImpulse    float64 `yaml:"high_jump_impulse"`
	MaxJumps           int     `yaml:"max_jumps"`
	LandingTolerance   int     `yaml:"landing_tolerance"`
	PlatformEdgeMargin int     `yaml:"platform_edge_margin"`
}

// PlayerConfig defines the runner body and lane.
type PlayerConfig struct {
	LaneX        int `yaml:"lane_x"` // Left edge of the standing box in the lane
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	SlideHeight  int `yaml:"slide_height"`
	ParkX        int `yaml:"park_x"`        // Where the dormant second runner waits
	ReviveOffset int `yaml:"revive_offset"` // Distance behind the fallen runner
	RunFrameMs   int `yaml:"run_frame_ms"`
}

// ChaptersConfig defines chapter goals and speeds.
type ChaptersConfig struct {
	Count             int   `yaml:"count"`
	BaseSpeeds        []int `yaml:"base_speeds"`
	GoalSeconds       int   `yaml:"goal_seconds"`
	BoostAfterSeconds int   `yaml:"boost_after_seconds"`
	TimeBoost         int   `yaml:"time_boost"`
	GradeSplitSeconds int   `yaml:"grade_split_seconds"`
}

// EffectsConfig defines the timed colour effects.
type EffectsConfig struct {
	DurationMs      int64 `yaml:"duration_ms"`
	BlinkWindowMs   int64 `yaml:"blink_window_ms"`
	BlinkPeriodMs   int64 `yaml:"blink_period_ms"`
	SpeedMultiplier int   `yaml:"speed_multiplier"`
}

// DelayBand maps an accelerated speed range to a spawn delay range.
// A band with BelowSpeed 0 matches every speed.
type DelayBand struct {
	BelowSpeed int `yaml:"below_speed"`
	MinMs      int `yaml:"min_ms"`
	MaxMs      int `yaml:"max_ms"`
}

// SpawnWeights are the relative odds of each spawn event kind.
type SpawnWeights struct {
	Obstacle int `yaml:"obstacle"`
	Pit      int `yaml:"pit"`
	Platform int `yaml:"platform"`
}

// SpawnerConfig defines procedural generation.
type SpawnerConfig struct {
	InitialDelayMs          int64        `yaml:"initial_delay_ms"`
	Weights                 SpawnWeights `yaml:"weights"`
	DelayBands              []DelayBand  `yaml:"delay_bands"`
	PitMinWidth             int          `yaml:"pit_min_width"`
	PitMaxWidth             int          `yaml:"pit_max_width"`
	PitDepth                int          `yaml:"pit_depth"`
	PlatformHeight          int          `yaml:"platform_height"`
	FloatingMinWidth        int          `yaml:"floating_min_width"`
	FloatingMaxWidth        int          `yaml:"floating_max_width"`
	FloatingMinRise         int          `yaml:"floating_min_rise"`
	FloatingMaxRise         int          `yaml:"floating_max_rise"`
	LowGroundMinWidth       int          `yaml:"low_ground_min_width"`
	LowGroundMaxWidth       int          `yaml:"low_ground_max_width"`
	LowGroundRise           int          `yaml:"low_ground_rise"`
	PlatformObstacleChance  float64      `yaml:"platform_obstacle_chance"`
	PlatformObstacleMinX    int          `yaml:"platform_obstacle_min_x"`
	PlatformObstacleMargin  int          `yaml:"platform_obstacle_margin"`
	GroundMinWidth          int          `yaml:"ground_min_width"`
	GroundMaxWidth          int          `yaml:"ground_max_width"`
	GroundLookahead         int          `yaml:"ground_lookahead"`
	ItemIntervalMs          int64        `yaml:"item_interval_ms"`
	ItemQuotaMin            int          `yaml:"item_quota_min"`
	ItemQuotaMax            int          `yaml:"item_quota_max"`
	ItemSize                int          `yaml:"item_size"`
	ItemMinRise             int          `yaml:"item_min_rise"`
	ItemMaxRise             int          `yaml:"item_max_rise"`
	CollectibleIntervalMs   int64        `yaml:"collectible_interval_ms"`
	CollectibleChance       float64      `yaml:"collectible_chance"`
	CollectibleMinRise      int          `yaml:"collectible_min_rise"`
	CollectibleMaxRise      int          `yaml:"collectible_max_rise"`
	SpeedLineOdds           int          `yaml:"speed_line_odds"` // One in N frames
	SpeedLineFactor         int          `yaml:"speed_line_factor"`
	MaxEntitiesPerKind      int          `yaml:"max_entities_per_kind"`
}

// RelayConfig defines the relay prompt.
type RelayConfig struct {
	PromptTimeoutMs int64 `yaml:"prompt_timeout_ms"`
}

// TransitionConfig defines the chapter-start wipe.
type TransitionConfig struct {
	DurationMs     int64   `yaml:"duration_ms"`
	RadiusFraction float64 `yaml:"radius_fraction"`
}

// CollectibleConfig defines the grade point pickup reward.
type CollectibleConfig struct {
	TimeBonusMs int64 `yaml:"time_bonus_ms"`
	Score       int   `yaml:"score"`
}

// InputConfig defines platform input behaviour.
type InputConfig struct {
	SlideHoldMs int `yaml:"slide_hold_ms"`
}

// Validate reports the first structural problem in the config.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.GroundY <= 0 || c.Screen.GroundY >= c.Screen.Height {
		errs = append(errs, fmt.Errorf("ground_y %d must lie inside the screen", c.Screen.GroundY))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.SlideHeight <= 0 {
		errs = append(errs, errors.New("player dimensions must be positive"))
	}
	if c.Physics.MaxJumps < 1 {
		errs = append(errs, errors.New("max_jumps must be at least 1"))
	}
	if c.Chapters.Count < 1 || len(c.Chapters.BaseSpeeds) < c.Chapters.Count {
		errs = append(errs, fmt.Errorf("need %d base speeds, got %d", c.Chapters.Count, len(c.Chapters.BaseSpeeds)))
	}
	if c.Chapters.GoalSeconds <= 0 {
		errs = append(errs, errors.New("goal_seconds must be positive"))
	}
	w := c.Spawner.Weights
	if w.Obstacle < 0 || w.Pit < 0 || w.Platform < 0 || w.Obstacle+w.Pit+w.Platform == 0 {
		errs = append(errs, errors.New("spawn weights must be non-negative and not all zero"))
	}
	if len(c.Spawner.DelayBands) == 0 {
		errs = append(errs, errors.New("at least one delay band is required"))
	}
	for i, b := range c.Spawner.DelayBands {
		if b.MinMs < 0 || b.MaxMs < b.MinMs {
			errs = append(errs, fmt.Errorf("delay band %d has invalid range [%d, %d]", i, b.MinMs, b.MaxMs))
		}
	}
	if c.Spawner.MaxEntitiesPerKind <= 0 {
		errs = append(errs, errors.New("max_entities_per_kind must be positive"))
	}
	if c.Effects.DurationMs <= 0 {
		errs = append(errs, errors.New("effect duration must be positive"))
	}
	if c.Transition.DurationMs <= 0 {
		errs = append(errs, errors.New("transition duration must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
