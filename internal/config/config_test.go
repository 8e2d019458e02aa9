package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseRunner(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParseRunner(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultRunnerConfig() differ:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("chapters:\n  goal_seconds: 20\nrelay:\n  prompt_timeout_ms: 5000\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Chapters.GoalSeconds != 20 {
		t.Errorf("GoalSeconds = %d, expected 20", cfg.Chapters.GoalSeconds)
	}
	if cfg.Relay.PromptTimeoutMs != 5000 {
		t.Errorf("PromptTimeoutMs = %d, expected 5000", cfg.Relay.PromptTimeoutMs)
	}
	if cfg.Physics.JumpImpulse != -16 {
		t.Errorf("unset keys should keep defaults, JumpImpulse = %v", cfg.Physics.JumpImpulse)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("screen:\n  width: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("invalid config should fail validation")
	}
}

func TestValidateRejectsEmptyWeights(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Spawner.Weights = SpawnWeights{}
	if err := cfg.Validate(); err == nil {
		t.Error("all-zero weights should be rejected")
	}
}

func TestPacingSpeed(t *testing.T) {
	p := NewPacing(DefaultRunnerConfig())

	tests := []struct {
		chapter, elapsed, expected int
	}{
		{1, 0, 6},
		{1, 30, 6},
		{1, 31, 7},
		{2, 10, 8},
		{3, 45, 11},
		{0, 0, 6},  // clamped low
		{9, 0, 10}, // clamped high
	}
	for _, tc := range tests {
		if got := p.Speed(tc.chapter, tc.elapsed); got != tc.expected {
			t.Errorf("Speed(%d, %d) = %d, expected %d", tc.chapter, tc.elapsed, got, tc.expected)
		}
	}
}

func TestPacingDelayBands(t *testing.T) {
	p := NewPacing(DefaultRunnerConfig())

	tests := []struct {
		speed    int
		min, max int
	}{
		{6, 400, 1200},
		{8, 400, 1200},
		{9, 300, 900},
		{11, 300, 900},
		{12, 250, 700},
		{30, 250, 700},
	}
	for _, tc := range tests {
		lo, hi := p.SpawnDelayRange(tc.speed)
		if lo != tc.min || hi != tc.max {
			t.Errorf("SpawnDelayRange(%d) = [%d, %d], expected [%d, %d]", tc.speed, lo, hi, tc.min, tc.max)
		}
	}
}

func TestPacingGoalAndProgress(t *testing.T) {
	p := NewPacing(DefaultRunnerConfig())

	if p.GoalReached(45) {
		t.Error("goal is reached only strictly after 45 seconds")
	}
	if !p.GoalReached(46) {
		t.Error("46 seconds should complete the chapter")
	}
	if got := p.Progress(90); got != 1 {
		t.Errorf("Progress(90) = %v, expected 1", got)
	}
	if p.Chapters() != 3 {
		t.Errorf("Chapters() = %d", p.Chapters())
	}
}
