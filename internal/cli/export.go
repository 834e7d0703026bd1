package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinicbox/patreg/internal/patient"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Out string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all patients to a JSON file",
		Long: `Write the full patient listing to a dated JSON document,
patients-YYYY-MM-DD.json, in the output directory. Internal row ids are
omitted; each record carries its registration date instead.

The destination defaults to export_dir from the config file, falling
back to the current directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "", "output directory (default from config, else .)")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	ctx := context.Background()
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	dir := opts.Out
	if dir == "" {
		dir = opts.cfg.ExportDir
	}
	if dir == "" {
		dir = "."
	}

	exp := &patient.Exporter{
		Registry: patient.NewRegistry(newHandle(opts.RootOptions)),
		Dir:      dir,
	}

	path, err := exp.Export(ctx)
	if err != nil {
		_ = out.Error(ErrCodeWriteError, err.Error(), nil)
		return WrapExitError(ExitFailure, "export failed", err)
	}

	return out.Success(exportResult{Path: path, Message: fmt.Sprintf("Exported patients to %s", path)})
}

// exportResult is the success payload for the export command.
type exportResult struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (r exportResult) String() string {
	return r.Message
}
