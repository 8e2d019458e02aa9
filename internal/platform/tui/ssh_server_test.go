package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/aplus-runner/internal/config"
)

func TestResolveHostKeyPathCreatesDir(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() failed: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory was not created: %v", err)
	}
}

func TestNewSSHServerRejectsInvalidRunnerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Runner = config.DefaultRunnerConfig()
	cfg.Runner.Chapters.GoalSeconds = 0
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.DBPath = filepath.Join(t.TempDir(), "runs.db")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("expected an error for a zero chapter goal")
	}
}

func TestNewSSHServerOpensHistory(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "data", "runs.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Error("run history was not opened")
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d before any connection", srv.ActiveSessions())
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
	if srv.store != nil {
		t.Error("store still set after shutdown")
	}
}
