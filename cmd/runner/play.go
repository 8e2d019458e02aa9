package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/aplus-runner/internal/config"
	"github.com/vovakirdan/aplus-runner/internal/core"
	"github.com/vovakirdan/aplus-runner/internal/games/runner"
	"github.com/vovakirdan/aplus-runner/internal/platform/audio"
	"github.com/vovakirdan/aplus-runner/internal/platform/tui"
	"github.com/vovakirdan/aplus-runner/internal/storage"
)

var (
	flagLogPath  string
	flagLogLevel string
	flagSound    bool
	flagVolume   float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start A+ Runner in this terminal.

Controls:
  Up/W       - Jump (twice for a double jump)
  Down/S     - Slide (hold)
  Space      - Use skill / select
  Enter      - Confirm
  Arrows     - Move through menus
  Mouse      - Click menu entries and buttons
  P          - Pause
  Esc        - Exit during a run
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

The terminal owns the screen while playing, so logs go to --log.

Examples:
  runner play
  runner play --sound --volume 0.4
  runner play --seed 42 --log ./runner.log --log-level debug
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects and music")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := openLogger(flagLogPath, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	opts := []runner.Option{
		runner.WithSeed(cfg.Seed),
		runner.WithLogger(logger),
	}

	var player *audio.Player
	if flagSound {
		player = audio.NewPlayer(flagVolume, logger)
		if initErr := player.Initialize(); initErr != nil {
			logger.Warn("sound disabled", "error", initErr)
			player = nil
		} else {
			opts = append(opts, runner.WithAudio(player))
		}
	}

	game := runner.New(runnerCfg, opts...)
	logger.Info("starting", "seed", cfg.Seed, "fps", cfg.TickRate)

	// Open run history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	// Release resources before potential exit
	if store != nil {
		store.Close()
	}
	if player != nil {
		player.Close()
	}
	if logFile != nil {
		logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a logger writing to path, or a discarding logger when
// path is empty. The returned file, if any, must be closed by the caller.
func openLogger(path, level string) (*log.Logger, *os.File, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if path == "" {
		return log.New(io.Discard), nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "aplus",
	})
	return logger, f, nil
}
