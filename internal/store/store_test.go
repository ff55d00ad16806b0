package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blade-kv/blade/internal/config"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	cfg := testConfig(t)

	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(cfg.DBLocation); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_CreatesMissingParentDirectory(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBLocation = filepath.Join(filepath.Dir(cfg.DBLocation), "nested", "deeper", config.DBFileName)

	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(cfg.DBLocation); os.IsNotExist(err) {
		t.Error("database file was not created under the nested directory")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	cfg := testConfig(t)

	for i := 0; i < 3; i++ {
		s, err := Open(cfg)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	var name string
	err = s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='entries'",
	).Scan(&name)
	if err != nil {
		t.Errorf("entries table not found after idempotent opens: %v", err)
	}
}

func TestOpen_AppliesConfiguredPragmas(t *testing.T) {
	cfg := testConfig(t)
	cfg.SynchronousMode = config.SynchronousFull
	cfg.BusyTimeoutMS = 250

	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if err := s.verifyPragma("journal_mode", "wal"); err != nil {
		t.Error(err)
	}
	// synchronous=FULL reads back as 2
	if err := s.verifyPragma("synchronous", "2"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("busy_timeout", "250"); err != nil {
		t.Error(err)
	}
}

func TestOpen_RejectsInvalidSynchronousMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.SynchronousMode = config.SynchronousMode("wal2")

	if _, err := Open(cfg); err == nil {
		t.Error("expected error for invalid synchronous mode, got nil")
	}
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestClose_MultipleCalls(t *testing.T) {
	s, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}

	// Second close must not panic.
	_ = s.Close()
}
