// runner is A+ Runner, a side-scrolling relay runner for the terminal.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner serve             - Start SSH server for remote play
//	runner records           - Show the run history
//	runner config            - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.aplus/runs.db)
//	--config <path>  - Use a custom runner.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "A+ Runner - a relay runner for your terminal",
	Long: `A+ Runner is a side-scrolling relay runner. Pick two runners, survive
each chapter for 45 seconds and pass the baton when the first one falls.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  records  - View the run history
  config   - Print the default tuning YAML

Examples:
  runner play
  runner play --sound --seed 42
  runner serve --ssh :2222
  runner records --chapter 3`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.aplus/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(configCmd)
}
