package form

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed patient.cue
var patientCUE string

// Error code constants for form spec loading.
const (
	ErrCodeCompileFailed = "F001" // CUE source did not compile
	ErrCodeMissingForm   = "F002" // requested form not declared
	ErrCodeDecodeFailed  = "F003" // CUE value did not decode into a Spec
	ErrCodeInvalidSpec   = "F004" // decoded spec is structurally unsound
)

// LoadError represents an error that occurred while loading a form spec.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadSpec compiles CUE source and extracts the form declared under
// form.<name>.
func LoadSpec(source, name string) (*Spec, error) {
	ctx := cuecontext.New()

	value := ctx.CompileString(source)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeCompileFailed, Message: fmt.Sprintf("compiling form spec: %v", err)}
	}

	formVal := value.LookupPath(cue.ParsePath("form." + name))
	if !formVal.Exists() {
		return nil, &LoadError{Code: ErrCodeMissingForm, Message: fmt.Sprintf("form %q not declared", name)}
	}

	spec := &Spec{Name: name}
	if err := formVal.Decode(spec); err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("decoding form %q: %v", name, err)}
	}

	if err := spec.validate(); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidSpec, Message: err.Error()}
	}

	return spec, nil
}

// PatientSpec loads the embedded patient registration form.
func PatientSpec() (*Spec, error) {
	return LoadSpec(patientCUE, "patient")
}
