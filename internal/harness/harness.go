package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/blade-kv/blade/internal/cli"
	"github.com/blade-kv/blade/internal/config"
	"github.com/blade-kv/blade/internal/engine"
)

// Harness owns a scratch directory for one run of the acceptance suite.
// Every scenario gets its own database underneath it.
type Harness struct {
	runID string
	root  string
}

// New creates a harness with a unique scratch directory.
func New() (*Harness, error) {
	runID := uuid.NewString()
	root := filepath.Join(os.TempDir(), "blade-harness", runID)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create harness directory: %w", err)
	}
	return &Harness{runID: runID, root: root}, nil
}

// RunID identifies this harness run.
func (h *Harness) RunID() string {
	return h.runID
}

// Cleanup removes the scratch directory and everything under it.
func (h *Harness) Cleanup() error {
	return os.RemoveAll(h.root)
}

// RunScenario executes every step of the scenario against one fresh store
// and returns the transcript. Expectation failures abort the run with an
// error naming the offending step.
func (h *Harness) RunScenario(ctx context.Context, sc *Scenario) ([]byte, error) {
	cfg := config.Config{
		DBLocation:      filepath.Join(h.root, sc.Name, config.DBFileName),
		SynchronousMode: config.SynchronousNormal,
		BusyTimeoutMS:   config.DefaultBusyTimeoutMS,
	}

	var transcript bytes.Buffer
	fmt.Fprintf(&transcript, "# %s\n", sc.Name)

	for i, step := range sc.Steps {
		fmt.Fprintf(&transcript, "$ blade %s\n", strings.Join(step.Run, " "))

		stdout, err := h.invoke(ctx, cfg, step)
		if err != nil {
			code, ok := engineErrorCode(err)
			if !ok {
				return nil, fmt.Errorf("scenario %q step %d: unexpected failure: %w", sc.Name, i+1, err)
			}
			if step.WantError != code {
				return nil, fmt.Errorf("scenario %q step %d: error code %s, want %q", sc.Name, i+1, code, step.WantError)
			}
			if stdout != "" {
				return nil, fmt.Errorf("scenario %q step %d: stdout %q on a failed operation", sc.Name, i+1, stdout)
			}
			fmt.Fprintf(&transcript, "error: %s\n", code)
			continue
		}

		if step.WantError != "" {
			return nil, fmt.Errorf("scenario %q step %d: succeeded, want error %s", sc.Name, i+1, step.WantError)
		}
		if stdout != step.Want {
			return nil, fmt.Errorf("scenario %q step %d: stdout mismatch\ngot:  %q\nwant: %q", sc.Name, i+1, stdout, step.Want)
		}
		transcript.WriteString(stdout)
	}

	return transcript.Bytes(), nil
}

// invoke runs one CLI invocation on a fresh command tree, the way each
// acceptance step runs a fresh process.
func (h *Harness) invoke(ctx context.Context, cfg config.Config, step Step) (string, error) {
	cmd := cli.NewRootCommandWithOptions(&cli.RootOptions{
		Resolve: func() (config.Config, error) { return cfg, nil },
	})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	if step.Stdin != "" {
		cmd.SetIn(strings.NewReader(step.Stdin))
	}
	cmd.SetArgs(step.Run)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), err
}

// engineErrorCode extracts the engine error code from a failed invocation.
func engineErrorCode(err error) (string, bool) {
	var e *engine.Error
	if errors.As(err, &e) {
		return string(e.Code), true
	}
	return "", false
}
