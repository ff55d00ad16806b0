package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blade-kv/blade/internal/config"
	"github.com/blade-kv/blade/internal/engine"
)

// RootOptions holds global flags and wiring shared by all commands.
type RootOptions struct {
	Verbose bool

	// Resolve produces the configuration commands run with. Defaults to
	// config.Resolve; tests and the harness substitute a fixed config.
	Resolve func() (config.Config, error)
}

// NewRootCommand creates the root command for the blade CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{Resolve: config.Resolve})
}

// NewRootCommandWithOptions creates the root command with explicit wiring.
// The scenario harness and tests use it to pin the configuration.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "blade",
		Short:         "blade - namespaced key-value store",
		Long:          "A persistent, namespace-aware key-value store.\nKeys take the form `key[@namespace]`; listings are most-recent-first.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewListNamespacesCommand(opts))
	cmd.AddCommand(NewDumpConfigCommand(opts))

	return cmd
}

// newEngine resolves the configuration and builds the engine behind a
// command invocation. Verbose mode reports the resolved database on stderr.
func (opts *RootOptions) newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	cfg, err := opts.Resolve()
	if err != nil {
		return nil, engine.NewConfigError(err)
	}
	if opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "database: %s\n", cfg.DBLocation)
	}
	return engine.New(cfg), nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
