package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a key. `key[@namespace]`",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}

			value, err := eng.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeValue(cmd.OutOrStdout(), value, isTerminal(os.Stdout))
		},
	}
}
