package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Delimiter string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list [namespace] [delimiter]",
		Short: "List all keys, most recently written first",
		Long: `List all keys of a namespace, most recently written first.
Without an argument the default namespace is listed. Each line is the key
and the value separated by the delimiter; the namespace suffix is not
shown, since the namespace is already known to the caller.
The delimiter may be given as the second argument or via --delimiter;
the flag wins when both are present.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := ""
			if len(args) >= 1 {
				namespace = args[0]
			}
			if len(args) == 2 && !cmd.Flags().Changed("delimiter") {
				opts.Delimiter = args[1]
			}

			eng, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}

			items, err := eng.List(cmd.Context(), namespace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			terminal := isTerminal(os.Stdout)
			for _, item := range items {
				if _, err := io.WriteString(out, item.Key); err != nil {
					return err
				}
				if _, err := io.WriteString(out, opts.Delimiter); err != nil {
					return err
				}
				if err := writeValue(out, item.Value, terminal); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Delimiter, "delimiter", "\t", "separator between key and value")

	return cmd
}
