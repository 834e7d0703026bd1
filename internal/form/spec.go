package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Field formats understood by the derived validator.
const (
	FormatEmail  = "email"
	FormatDate   = "date"
	FormatNumber = "number"
)

// Field describes one input in a form spec.
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options"` // enumerated values, empty = free text
	Format   string   `json:"format"`  // "", email, date, number
}

// Spec is a declared form: an ordered field list compiled from CUE.
type Spec struct {
	Name   string  `json:"-"`
	Fields []Field `json:"fields"`
}

// InitialValues returns the blank value set for this form, one empty
// entry per declared field.
func (s *Spec) InitialValues() map[string]string {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		values[f.Name] = ""
	}
	return values
}

// specEmailPattern mirrors the basic local@domain.tld check.
var specEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator derives the form's validation collaborator: required-field,
// format and option checks, keyed by field name with label-based
// messages. Optional fields are only format-checked when non-empty.
func (s *Spec) Validator() Validator {
	fields := make([]Field, len(s.Fields))
	copy(fields, s.Fields)

	return func(values map[string]string) map[string]string {
		errs := make(map[string]string)
		for _, f := range fields {
			value := values[f.Name]
			if value == "" {
				if f.Required {
					errs[f.Name] = fmt.Sprintf("%s is required", f.Label)
				}
				continue
			}

			if len(f.Options) > 0 && !contains(f.Options, value) {
				errs[f.Name] = fmt.Sprintf("%s must be one of %s", f.Label, strings.Join(f.Options, ", "))
				continue
			}

			switch f.Format {
			case FormatEmail:
				if !specEmailPattern.MatchString(value) {
					errs[f.Name] = fmt.Sprintf("%s must be a valid email address", f.Label)
				}
			case FormatDate:
				if _, err := time.Parse("2006-01-02", value); err != nil {
					errs[f.Name] = fmt.Sprintf("%s must be YYYY-MM-DD", f.Label)
				}
			case FormatNumber:
				if _, err := strconv.ParseFloat(value, 64); err != nil {
					errs[f.Name] = fmt.Sprintf("%s must be a number", f.Label)
				}
			}
		}
		return errs
	}
}

// validate checks structural soundness of a decoded spec.
func (s *Spec) validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("form %q declares no fields", s.Name)
	}
	seen := make(map[string]bool)
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("form %q has a field without a name", s.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("form %q declares field %q twice", s.Name, f.Name)
		}
		seen[f.Name] = true
		switch f.Format {
		case "", FormatEmail, FormatDate, FormatNumber:
		default:
			return fmt.Errorf("form %q field %q has unknown format %q", s.Name, f.Name, f.Format)
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
