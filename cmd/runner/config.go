package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aplus-runner/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner config",
	Long: `Print the embedded default runner.yaml. Save it to
~/.aplus/configs/runner.yaml or ./configs/runner.yaml and edit it to
tune physics, pacing and spawning; omitted keys keep their defaults.

With --check the effective config (--config, then the search paths) is
loaded and validated instead.

Examples:
  runner config > ~/.aplus/configs/runner.yaml
  runner config --check --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the effective config instead of printing the default")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagCheck {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Config OK: %d chapters, goal %ds, %dx%d playfield\n",
		cfg.Chapters.Count, cfg.Chapters.GoalSeconds, cfg.Screen.Width, cfg.Screen.Height)
}
