package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "keys", "host_key")

	cfg := SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: keyPath,
		IdleTimeout: time.Minute,
	}
	srv, err := NewSSHServer(cfg, testOptions("banner"), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected 127.0.0.1:0", srv.Addr())
	}
	if _, err := os.Stat(keyPath); err != nil {
		t.Errorf("host key not generated: %v", err)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23235" {
		t.Errorf("Address = %q, expected :23235", cfg.Address)
	}
	if cfg.IdleTimeout <= 0 {
		t.Error("IdleTimeout should be positive")
	}
}
