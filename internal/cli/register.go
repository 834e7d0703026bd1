package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinicbox/patreg/internal/form"
	"github.com/clinicbox/patreg/internal/patient"
)

// RegisterOptions holds flags for the register command.
type RegisterOptions struct {
	*RootOptions
	Fields map[string]*string
}

// registerFlags maps flag names to patient field names, in display order.
var registerFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"first-name", patient.FieldFirstName, "patient first name (required)"},
	{"last-name", patient.FieldLastName, "patient last name (required)"},
	{"date-of-birth", patient.FieldDateOfBirth, "date of birth, YYYY-MM-DD (required)"},
	{"gender", patient.FieldGender, "gender: male|female|other|prefer_not_to_say (required)"},
	{"email", patient.FieldEmail, "email address"},
	{"phone", patient.FieldPhone, "phone number"},
	{"address", patient.FieldAddress, "postal address"},
	{"height-cm", patient.FieldHeightCM, "height in centimeters"},
	{"weight-kg", patient.FieldWeightKG, "weight in kilograms"},
	{"allergies", patient.FieldAllergies, "known allergies"},
	{"medical-notes", patient.FieldMedicalNotes, "free-form medical notes"},
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegisterOptions{
		RootOptions: rootOpts,
		Fields:      make(map[string]*string),
	}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new patient",
		Long: `Register a new patient in the local database.

The record is validated field by field before insertion; validation
failures are reported per field and nothing is written. Patients are
append-only - there is no update or delete.

Examples:
  patreg register --first-name John --last-name Doe \
      --date-of-birth 1990-05-01 --gender male
  patreg register --first-name Ada --last-name Lovelace \
      --date-of-birth 1815-12-10 --gender female --email ada@example.org`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(opts, cmd)
		},
	}

	for _, rf := range registerFlags {
		opts.Fields[rf.field] = cmd.Flags().String(rf.flag, "", rf.usage)
	}

	return cmd
}

func runRegister(opts *RegisterOptions, cmd *cobra.Command) error {
	ctx := context.Background()
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	spec, err := form.PatientSpec()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load registration form", err)
	}

	reg := patient.NewRegistry(newHandle(opts.RootOptions))

	// The registration "page": a form controller over the patient form,
	// submitting into the registry.
	var newID int64
	ctrl := form.NewController(spec.InitialValues(), patient.Validate,
		func(ctx context.Context, values map[string]string) error {
			p, err := patient.FromValues(values)
			if err != nil {
				return err
			}
			id, err := reg.Register(ctx, p)
			if err != nil {
				return err
			}
			newID = id
			return nil
		},
	)

	for _, rf := range registerFlags {
		if value := *opts.Fields[rf.field]; value != "" {
			ctrl.SetField(rf.field, value)
		}
	}

	switch err := ctrl.Submit(ctx); {
	case err == nil:
		return out.Success(registerResult{ID: newID, Message: fmt.Sprintf("Registered patient #%d", newID)})
	case err == form.ErrValidation:
		fieldErrs := ctrl.FieldErrors()
		// Report in form display order, not map order
		details := make([]fieldError, 0, len(fieldErrs))
		for _, f := range spec.Fields {
			if msg, ok := fieldErrs[f.Name]; ok {
				details = append(details, fieldError{Field: f.Name, Message: msg})
			}
		}
		_ = out.Error(ErrCodeValidation, "patient record is invalid", details)
		if opts.Format != "json" {
			for _, d := range details {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", d.Field, d.Message)
			}
		}
		return NewExitError(ExitFailure, "validation failed")
	default:
		_ = out.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitFailure, "registration failed", err)
	}
}

// fieldError is one per-field validation failure in error details.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// registerResult is the success payload for the register command.
type registerResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// String renders the text-format success line.
func (r registerResult) String() string {
	return r.Message
}
