package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clinicbox/patreg/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database string
	Config   string
	Format   string // "json" | "text"
	Verbose  bool

	cfg Config // resolved config file contents
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the patreg CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "patreg",
		Short: "patreg - local-first patient registry",
		Long: `A patient registry backed by an embedded SQLite database.

Registration, listing, name search, JSON export and an ad-hoc SQL
console, all against a single local database file. There is no server;
cross-process consistency comes from the engine's WAL protocol.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return opts.resolveDatabase()
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the registry database (default from config, else ~/.patreg/patreg.db)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to config file (default ~/.patreg/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewConsoleCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// configureLogging sets the process-wide slog default.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// resolveDatabase settles the database path: flag beats config file beats
// the per-user default. The default's parent directory is created on
// demand; explicit paths are used as given.
func (o *RootOptions) resolveDatabase() error {
	cfg, err := LoadConfig(o.Config)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if o.Database != "" {
		return nil
	}
	if cfg.Database != "" {
		o.Database = cfg.Database
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	dir := filepath.Join(home, ".patreg")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	o.Database = filepath.Join(dir, "patreg.db")
	return nil
}

// newHandle builds the shared store handle for one command invocation.
func newHandle(opts *RootOptions) *store.Handle {
	slog.Debug("using database", "path", opts.Database)
	return store.NewHandle(opts.Database)
}
