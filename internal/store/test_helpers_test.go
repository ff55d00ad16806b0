package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/blade-kv/blade/internal/config"
)

// testConfig returns a config pointing at a scratch database file.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		DBLocation:      filepath.Join(t.TempDir(), config.DBFileName),
		SynchronousMode: config.SynchronousNormal,
		BusyTimeoutMS:   config.DefaultBusyTimeoutMS,
	}
}

// createTestStore opens a store on a scratch database.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustSet writes an entry or fails the test.
func mustSet(t *testing.T, s *Store, namespace, key, value string) {
	t.Helper()
	if err := s.Set(context.Background(), namespace, key, []byte(value)); err != nil {
		t.Fatalf("Set(%q, %q) failed: %v", namespace, key, err)
	}
}
