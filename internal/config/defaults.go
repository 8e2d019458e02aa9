package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It mirrors
// defaults/runner.yaml and is the last fallback of LoadRunner.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:   1200,
			Height:  600,
			GroundY: 500,
		},
		Physics: PhysicsConfig{
			Gravity:            1.0,
			JumpImpulse:        -16,
			HighJumpImpulse:    -22,
			MaxJumps:           2,
			LandingTolerance:   15,
			PlatformEdgeMargin: 10,
		},
		Player: PlayerConfig{
			LaneX:        90,
			Width:        70,
			Height:       90,
			SlideHeight:  45,
			ParkX:        -200,
			ReviveOffset: 150,
			RunFrameMs:   150,
		},
		Chapters: ChaptersConfig{
			Count:             3,
			BaseSpeeds:        []int{6, 8, 10},
			GoalSeconds:       45,
			BoostAfterSeconds: 30,
			TimeBoost:         1,
			GradeSplitSeconds: 30,
		},
		Effects: EffectsConfig{
			DurationMs:      3000,
			BlinkWindowMs:   1000,
			BlinkPeriodMs:   100,
			SpeedMultiplier: 3,
		},
		Spawner: SpawnerConfig{
			InitialDelayMs: 2000,
			Weights: SpawnWeights{
				Obstacle: 50,
				Pit:      20,
				Platform: 30,
			},
			DelayBands: []DelayBand{
				{BelowSpeed: 9, MinMs: 400, MaxMs: 1200},
				{BelowSpeed: 12, MinMs: 300, MaxMs: 900},
				{BelowSpeed: 0, MinMs: 250, MaxMs: 700},
			},
			PitMinWidth:            100,
			PitMaxWidth:            250,
			PitDepth:               100,
			PlatformHeight:         40,
			FloatingMinWidth:       300,
			FloatingMaxWidth:       550,
			FloatingMinRise:        100,
			FloatingMaxRise:        180,
			LowGroundMinWidth:      300,
			LowGroundMaxWidth:      600,
			LowGroundRise:          80,
			PlatformObstacleChance: 0.5,
			PlatformObstacleMinX:   30,
			PlatformObstacleMargin: 60,
			GroundMinWidth:         300,
			GroundMaxWidth:         550,
			GroundLookahead:        200,
			ItemIntervalMs:         6000,
			ItemQuotaMin:           1,
			ItemQuotaMax:           2,
			ItemSize:               60,
			ItemMinRise:            50,
			ItemMaxRise:            120,
			CollectibleIntervalMs:  1000,
			CollectibleChance:      0.7,
			CollectibleMinRise:     50,
			CollectibleMaxRise:     180,
			SpeedLineOdds:          4,
			SpeedLineFactor:        5,
			MaxEntitiesPerKind:     256,
		},
		Relay: RelayConfig{
			PromptTimeoutMs: 10000,
		},
		Transition: TransitionConfig{
			DurationMs:     1500,
			RadiusFraction: 0.7,
		},
		Collectible: CollectibleConfig{
			TimeBonusMs: 1000,
			Score:       1,
		},
		Input: InputConfig{
			SlideHoldMs: 500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
