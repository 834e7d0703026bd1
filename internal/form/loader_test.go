package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicbox/patreg/internal/patient"
)

func TestPatientSpec_LoadsEmbeddedForm(t *testing.T) {
	spec, err := PatientSpec()
	require.NoError(t, err)

	require.Len(t, spec.Fields, 11)
	assert.Equal(t, "first_name", spec.Fields[0].Name)
	assert.True(t, spec.Fields[0].Required)
	assert.Equal(t, "gender", spec.Fields[3].Name)
	assert.Equal(t,
		[]string{"male", "female", "other", "prefer_not_to_say"},
		spec.Fields[3].Options)

	values := spec.InitialValues()
	assert.Len(t, values, 11)
	assert.Equal(t, "", values["medical_notes"])
}

func TestLoadSpec_MissingForm(t *testing.T) {
	_, err := LoadSpec(patientCUE, "appointment")
	require.Error(t, err)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ErrCodeMissingForm, lerr.Code)
}

func TestLoadSpec_CompileFailure(t *testing.T) {
	_, err := LoadSpec("form: patient: fields: [", "patient")
	require.Error(t, err)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ErrCodeCompileFailed, lerr.Code)
}

func TestLoadSpec_RejectsDuplicateFieldNames(t *testing.T) {
	src := `form: dup: fields: [
		{name: "a", label: "A"},
		{name: "a", label: "A again"},
	]`
	_, err := LoadSpec(src, "dup")
	require.Error(t, err)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ErrCodeInvalidSpec, lerr.Code)
}

func TestLoadSpec_RejectsUnknownFormat(t *testing.T) {
	src := `form: bad: fields: [{name: "a", label: "A", format: "uuid"}]`
	_, err := LoadSpec(src, "bad")
	require.Error(t, err)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, ErrCodeInvalidSpec, lerr.Code)
}

func TestSpecValidator_MatchesFieldChecks(t *testing.T) {
	spec, err := PatientSpec()
	require.NoError(t, err)
	validate := spec.Validator()

	t.Run("required fields", func(t *testing.T) {
		errs := validate(spec.InitialValues())
		assert.Contains(t, errs, "first_name")
		assert.Contains(t, errs, "last_name")
		assert.Contains(t, errs, "date_of_birth")
		assert.Contains(t, errs, "gender")
		assert.Len(t, errs, 4)
		assert.Equal(t, "First name is required", errs["first_name"])
	})

	t.Run("valid record passes", func(t *testing.T) {
		values := spec.InitialValues()
		values["first_name"] = "John"
		values["last_name"] = "Doe"
		values["date_of_birth"] = "1990-05-01"
		values["gender"] = "male"
		values["email"] = "john@host.com"
		values["height_cm"] = "180.5"
		assert.Empty(t, validate(values))
	})

	t.Run("format and option checks", func(t *testing.T) {
		values := spec.InitialValues()
		values["first_name"] = "John"
		values["last_name"] = "Doe"
		values["date_of_birth"] = "05/01/1990"
		values["gender"] = "robot"
		values["email"] = "nope"
		values["weight_kg"] = "heavy"

		errs := validate(values)
		assert.Contains(t, errs, "date_of_birth")
		assert.Contains(t, errs, "gender")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "weight_kg")
	})

	// The CUE-derived validator flags exactly the same fields as the
	// hand-written patient validator on the same inputs.
	t.Run("agrees with patient.Validate", func(t *testing.T) {
		cases := []map[string]string{
			{},
			{"first_name": "John", "last_name": "Doe", "date_of_birth": "1990-05-01", "gender": "male"},
			{"first_name": "John", "last_name": "Doe", "date_of_birth": "bad", "gender": "robot", "email": "x"},
		}
		for _, values := range cases {
			specErrs := validate(values)
			patientErrs := patient.Validate(values)
			require.Len(t, specErrs, len(patientErrs))
			for field := range patientErrs {
				assert.Contains(t, specErrs, field)
			}
		}
	})
}
