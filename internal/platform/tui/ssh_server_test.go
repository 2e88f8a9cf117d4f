package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/autosnake/internal/core"
)

func TestSSHServerShutdownClosesStoreLast(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.HostKeyPath = filepath.Join(dir, "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Fatal("expected the scores database to open")
	}
	if err := srv.store.RecordLife(core.LifeRecord{GameID: "snake", Score: 3, Cause: core.CauseWall}); err != nil {
		t.Fatalf("RecordLife() before shutdown failed: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if _, err := srv.store.HighScore("snake"); err == nil {
		t.Error("store should be closed after Shutdown")
	}
}
