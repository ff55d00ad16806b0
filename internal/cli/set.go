package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blade-kv/blade/internal/engine"
)

// NewSetCommand creates the set command.
func NewSetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Set a key. `key[@namespace]`",
		Long: `Set a key. ` + "`key[@namespace]`" + `.
The value is taken from the second argument when given, otherwise it is
read from standard input (a pipe or redirected file).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}

			value, err := readValue(cmd, args)
			if err != nil {
				return err
			}

			return eng.Set(cmd.Context(), args[0], value)
		},
	}
}

// readValue returns the value argument, or the standard-input bytes when
// the argument is absent. A set with neither is an input error.
func readValue(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 2 {
		return []byte(args[1]), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return nil, engine.NewInputError("no value argument and no input on stdin")
	}

	value, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read value from stdin: %w", err)
	}
	return value, nil
}
