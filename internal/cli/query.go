package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/clinicbox/patreg/internal/console"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Params []string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <sql>",
		Short: "Run one SQL statement against the registry",
		Long: `Run a single SQL statement and print the result envelope.

Any statement type is accepted; positional ? placeholders bind the
--param values in order. The command itself always succeeds - engine
errors are reported inside the envelope, never as a process failure.

Examples:
  patreg query "SELECT * FROM patients LIMIT 5"
  patreg query "SELECT * FROM patients WHERE gender = ?" --param female
  patreg query --format json "SELECT count(*) AS n FROM patients"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.Params, "param", nil, "bind value for the next ? placeholder (repeatable)")

	return cmd
}

func runQuery(opts *QueryOptions, cmd *cobra.Command, sqlText string) error {
	ctx := context.Background()

	params := make([]any, len(opts.Params))
	for i, p := range opts.Params {
		params[i] = p
	}

	res := console.Exec(ctx, newHandle(opts.RootOptions), sqlText, params)

	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	res.WriteText(cmd.OutOrStdout())
	return nil
}
