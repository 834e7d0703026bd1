package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/clinicbox/patreg/internal/console"
)

// NewConsoleCommand creates the console command.
func NewConsoleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Open an interactive SQL console",
		Long: `Open an interactive console for running SQL against the registry
database. Statements execute immediately; results and engine errors are
printed in the configured format. Line history persists across sessions
in ~/.patreg_history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl := &console.REPL{
				Handle: newHandle(rootOpts),
				Out:    cmd.OutOrStdout(),
				Format: rootOpts.Format,
			}
			if err := repl.Run(context.Background()); err != nil {
				return WrapExitError(ExitFailure, "console session failed", err)
			}
			return nil
		},
	}

	return cmd
}
