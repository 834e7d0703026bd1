package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/clinicbox/patreg/internal/patient"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered patients",
		Long: `List every patient in the registry, ordered by last name then
first name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	ctx := context.Background()
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	reg := patient.NewRegistry(newHandle(opts))
	patients, err := reg.ListAll(ctx)
	if err != nil {
		_ = out.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitFailure, "list failed", err)
	}

	return writePatients(out, cmd.OutOrStdout(), patients)
}

// writePatients renders a patient listing in the configured format.
// Shared between list and search.
func writePatients(out *OutputFormatter, w io.Writer, patients []patient.Patient) error {
	if out.Format == "json" {
		return out.Success(patients)
	}

	if len(patients) == 0 {
		fmt.Fprintln(w, "No patients found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDATE OF BIRTH\tGENDER\tEMAIL\tPHONE")
	for _, p := range patients {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			strings.TrimSpace(p.LastName+", "+p.FirstName),
			p.DateOfBirth,
			p.Gender,
			orDash(p.Email),
			orDash(p.Phone),
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "(%d patients)\n", len(patients))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
