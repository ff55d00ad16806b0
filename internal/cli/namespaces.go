package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListNamespacesCommand creates the list-namespaces command.
func NewListNamespacesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-namespaces",
		Short: "List all namespaces holding at least one key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}

			namespaces, err := eng.Namespaces(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, ns := range namespaces {
				if _, err := fmt.Fprintln(out, ns); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
