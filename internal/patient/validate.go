package patient

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Field names shared by the registration form, the validator and the CLI.
const (
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldDateOfBirth  = "date_of_birth"
	FieldGender       = "gender"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldAddress      = "address"
	FieldHeightCM     = "height_cm"
	FieldWeightKG     = "weight_kg"
	FieldAllergies    = "allergies"
	FieldMedicalNotes = "medical_notes"
)

// dateLayout is the expected date_of_birth format.
const dateLayout = "2006-01-02"

// emailPattern accepts the basic local@domain.tld shape; full RFC 5322
// parsing is deliberately out of scope.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a candidate record and returns field-name to message
// mappings for every invalid field. Valid records produce an empty map.
// Validation results are data, never errors.
func Validate(values map[string]string) map[string]string {
	errs := make(map[string]string)

	if values[FieldFirstName] == "" {
		errs[FieldFirstName] = "First name is required"
	}
	if values[FieldLastName] == "" {
		errs[FieldLastName] = "Last name is required"
	}

	switch dob := values[FieldDateOfBirth]; dob {
	case "":
		errs[FieldDateOfBirth] = "Date of birth is required"
	default:
		if _, err := time.Parse(dateLayout, dob); err != nil {
			errs[FieldDateOfBirth] = "Date of birth must be YYYY-MM-DD"
		}
	}

	switch g := values[FieldGender]; g {
	case "":
		errs[FieldGender] = "Gender is required"
	default:
		if !Gender(g).Valid() {
			errs[FieldGender] = "Gender must be one of male, female, other, prefer_not_to_say"
		}
	}

	if email := values[FieldEmail]; email != "" && !emailPattern.MatchString(email) {
		errs[FieldEmail] = "Email must be a valid address"
	}
	if h := values[FieldHeightCM]; h != "" {
		if _, err := strconv.ParseFloat(h, 64); err != nil {
			errs[FieldHeightCM] = "Height must be a number"
		}
	}
	if w := values[FieldWeightKG]; w != "" {
		if _, err := strconv.ParseFloat(w, 64); err != nil {
			errs[FieldWeightKG] = "Weight must be a number"
		}
	}

	return errs
}

// FromValues builds a Patient from form values. Values are assumed to have
// passed Validate; a malformed numeric still returns an error rather than
// silently dropping the field.
func FromValues(values map[string]string) (Patient, error) {
	p := Patient{
		FirstName:    values[FieldFirstName],
		LastName:     values[FieldLastName],
		DateOfBirth:  values[FieldDateOfBirth],
		Gender:       Gender(values[FieldGender]),
		Email:        values[FieldEmail],
		Phone:        values[FieldPhone],
		Address:      values[FieldAddress],
		Allergies:    values[FieldAllergies],
		MedicalNotes: values[FieldMedicalNotes],
	}

	if h := values[FieldHeightCM]; h != "" {
		v, err := strconv.ParseFloat(h, 64)
		if err != nil {
			return Patient{}, fmt.Errorf("parse height_cm: %w", err)
		}
		p.HeightCM = &v
	}
	if w := values[FieldWeightKG]; w != "" {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return Patient{}, fmt.Errorf("parse weight_kg: %w", err)
		}
		p.WeightKG = &v
	}

	return p, nil
}
