package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/aplus-runner/internal/config"
	"github.com/vovakirdan/aplus-runner/internal/core"
	"github.com/vovakirdan/aplus-runner/internal/games/runner"
	"github.com/vovakirdan/aplus-runner/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.aplus/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Runner tunes every game served.
	Runner config.RunnerConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.aplus/runs.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Runner:      config.DefaultRunnerConfig(),
	}
}

// SSHServer serves A+ Runner over SSH. Every session gets its own game;
// only the run history database is shared.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if err := cfg.Runner.Validate(); err != nil {
		return nil, err
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config: cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "aplus-ssh",
		}),
	}

	// The history is optional; sessions play on without it.
	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		srv.logger.Warn("run history disabled", "path", cfg.DBPath, "error", err)
		srv.store = nil
	}

	// Middleware runs last to first: sessions are counted, then rejected
	// without a terminal, then handed a game.
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

// resolveHostKeyPath defaults to ~/.aplus/host_key and makes sure the
// key's directory exists so wish can generate it.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".aplus", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a fresh game and model for each session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	logger := s.logger.With("user", sess.User())

	game := runner.New(s.config.Runner,
		runner.WithSeed(time.Now().UnixNano()),
		runner.WithLogger(logger),
	)
	model := NewModel(game, s.store, core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// sessionMiddleware logs each session with the number of live sessions.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		remote := sess.RemoteAddr().String()
		started := time.Now()

		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", s.sessions.Add(1))
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", remote,
			"active", s.sessions.Add(-1), "duration", time.Since(started).Round(time.Second))
	}
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int64 {
	return s.sessions.Load()
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.closeStore()
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server, waiting up to ten seconds for
// sessions to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
