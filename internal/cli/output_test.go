package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blade-kv/blade/internal/engine"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"not found", engine.NewNotFoundError("k", nil), ExitFailure},
		{"config", engine.NewConfigError(errors.New("bad")), ExitCommandError},
		{"input", engine.NewInputError("no value"), ExitCommandError},
		{"plain", errors.New("anything else"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestWriteValue_Raw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeValue(&buf, []byte("hello"), false))
	assert.Equal(t, "hello\n", buf.String())
}

func TestWriteValue_BinaryOnPipe(t *testing.T) {
	// Non-terminal destinations always receive the raw bytes.
	raw := []byte{0xff, 0x00, 0x42}
	var buf bytes.Buffer
	require.NoError(t, writeValue(&buf, raw, false))
	assert.Equal(t, append(raw, '\n'), buf.Bytes())
}

func TestWriteValue_BinaryOnTerminal(t *testing.T) {
	raw := []byte{0xff, 0x00, 0x42}
	var buf bytes.Buffer
	require.NoError(t, writeValue(&buf, raw, true))
	assert.Equal(t, "binary data (3 bytes)\n", buf.String())
}

func TestWriteValue_UTF8OnTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeValue(&buf, []byte("héllo"), true))
	assert.Equal(t, "héllo\n", buf.String())
}
