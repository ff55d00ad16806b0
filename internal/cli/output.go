package cli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/blade-kv/blade/internal/engine"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (key not found, storage error)
	ExitCommandError = 2 // Command error (bad configuration, missing input)
)

// GetExitCode maps an error to the process exit code.
// Configuration and input errors are command errors (2); everything else,
// including NOT_FOUND and storage failures, exits 1.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if engine.IsConfig(err) || engine.IsInput(err) {
		return ExitCommandError
	}
	return ExitFailure
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// writeValue writes a value followed by a newline. When the destination is
// a terminal and the value is not valid UTF-8, a placeholder is printed
// instead of raw bytes.
func writeValue(w io.Writer, value []byte, terminal bool) error {
	if terminal && !utf8.Valid(value) {
		_, err := fmt.Fprintf(w, "binary data (%d bytes)\n", len(value))
		return err
	}
	if _, err := w.Write(value); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
