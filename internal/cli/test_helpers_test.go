package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/blade-kv/blade/internal/config"
)

// scratchConfig returns a config pointing at a scratch database.
func scratchConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		DBLocation:      filepath.Join(t.TempDir(), config.DBFileName),
		SynchronousMode: config.SynchronousNormal,
		BusyTimeoutMS:   config.DefaultBusyTimeoutMS,
	}
}

// runBlade executes one blade invocation against a fixed config, returning
// captured stdout. A fresh command tree per call mirrors the one-process-
// per-operation model.
func runBlade(t *testing.T, cfg config.Config, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommandWithOptions(&RootOptions{
		Resolve: func() (config.Config, error) { return cfg, nil },
	})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

// mustRun executes an invocation that is expected to succeed.
func mustRun(t *testing.T, cfg config.Config, args ...string) string {
	t.Helper()
	out, err := runBlade(t, cfg, nil, args...)
	if err != nil {
		t.Fatalf("blade %v failed: %v", args, err)
	}
	return out
}
