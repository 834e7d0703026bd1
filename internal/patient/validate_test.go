package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validValues() map[string]string {
	return map[string]string{
		FieldFirstName:   "John",
		FieldLastName:    "Doe",
		FieldDateOfBirth: "1990-05-01",
		FieldGender:      "male",
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	errs := Validate(validValues())
	assert.Empty(t, errs)
}

func TestValidate_RequiredFields(t *testing.T) {
	errs := Validate(map[string]string{})

	assert.Contains(t, errs, FieldFirstName)
	assert.Contains(t, errs, FieldLastName)
	assert.Contains(t, errs, FieldDateOfBirth)
	assert.Contains(t, errs, FieldGender)
	assert.Len(t, errs, 4, "only invalid fields appear in the mapping")
}

func TestValidate_FieldChecks(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		wantError bool
	}{
		{"malformed date", FieldDateOfBirth, "01/05/1990", true},
		{"valid date", FieldDateOfBirth, "1990-05-01", false},
		{"unknown gender", FieldGender, "unknown", true},
		{"prefer_not_to_say", FieldGender, "prefer_not_to_say", false},
		{"email without domain", FieldEmail, "john@", true},
		{"email without tld", FieldEmail, "john@host", true},
		{"email with spaces", FieldEmail, "jo hn@host.com", true},
		{"valid email", FieldEmail, "john@host.com", false},
		{"empty optional email", FieldEmail, "", false},
		{"non-numeric height", FieldHeightCM, "tall", true},
		{"numeric height", FieldHeightCM, "180.5", false},
		{"non-numeric weight", FieldWeightKG, "heavy", true},
		{"numeric weight", FieldWeightKG, "72", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			values[tt.field] = tt.value

			errs := Validate(values)
			if tt.wantError {
				assert.Contains(t, errs, tt.field)
			} else {
				assert.NotContains(t, errs, tt.field)
			}
		})
	}
}

func TestFromValues_ParsesNumerics(t *testing.T) {
	values := validValues()
	values[FieldHeightCM] = "180.5"
	values[FieldWeightKG] = "72"
	values[FieldEmail] = "john@host.com"

	p, err := FromValues(values)
	require.NoError(t, err)

	assert.Equal(t, "John", p.FirstName)
	assert.Equal(t, GenderMale, p.Gender)
	assert.Equal(t, "john@host.com", p.Email)
	require.NotNil(t, p.HeightCM)
	assert.Equal(t, 180.5, *p.HeightCM)
	require.NotNil(t, p.WeightKG)
	assert.Equal(t, 72.0, *p.WeightKG)
}

func TestFromValues_AbsentNumericsStayNil(t *testing.T) {
	p, err := FromValues(validValues())
	require.NoError(t, err)

	assert.Nil(t, p.HeightCM)
	assert.Nil(t, p.WeightKG)
}

func TestFromValues_MalformedNumericErrors(t *testing.T) {
	values := validValues()
	values[FieldHeightCM] = "tall"

	_, err := FromValues(values)
	assert.Error(t, err)
}
