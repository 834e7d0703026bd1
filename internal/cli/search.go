package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinicbox/patreg/internal/patient"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search patients by name",
		Long: `Search patients by first or last name, case-insensitively.

The term matches anywhere in either name. A blank term returns every
patient, same as list.

Examples:
  patreg search doe
  patreg search "van der"`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			return runSearch(rootOpts, cmd, term)
		},
	}

	return cmd
}

func runSearch(opts *RootOptions, cmd *cobra.Command, term string) error {
	ctx := context.Background()
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	reg := patient.NewRegistry(newHandle(opts))

	var (
		patients []patient.Patient
		err      error
	)
	if strings.TrimSpace(term) == "" {
		patients, err = reg.ListAll(ctx)
	} else {
		patients, err = reg.SearchByName(ctx, term)
	}
	if err != nil {
		_ = out.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitFailure, "search failed", err)
	}

	return writePatients(out, cmd.OutOrStdout(), patients)
}
