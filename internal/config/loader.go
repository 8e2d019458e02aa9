package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const runnerFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.aplus/configs/runner.yaml -> ./configs/runner.yaml
// -> embedded default -> hardcoded default.
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: cannot use %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(runnerFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", runnerFile)); err == nil {
		if cfg, err := ParseRunner(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := ParseRunner(defaultRunnerYAML); err == nil {
		return cfg, nil
	}
	return DefaultRunnerConfig(), nil
}

// ParseRunner decodes YAML over the built-in defaults and validates the result.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("config: parse failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aplus", "configs", filename)
}
