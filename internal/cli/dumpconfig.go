package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// NewDumpConfigCommand creates the dump-config command.
func NewDumpConfigCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump-config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), eng.DumpConfig())
			return err
		},
	}
}
