package patient

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Gender enumerates the accepted gender values.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// Genders lists every accepted value, in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay}

// Valid reports whether g is one of the accepted gender values.
func (g Gender) Valid() bool {
	for _, v := range Genders {
		if g == v {
			return true
		}
	}
	return false
}

// Patient is the sole persisted entity.
//
// ID and CreatedAt are assigned by the engine on insert and are immutable.
// Optional text fields use "" for absent (stored as NULL); optional
// numeric fields use nil for absent.
type Patient struct {
	ID           int64    `json:"id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	DateOfBirth  string   `json:"date_of_birth"` // YYYY-MM-DD
	Gender       Gender   `json:"gender"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Address      string   `json:"address,omitempty"`
	HeightCM     *float64 `json:"height_cm,omitempty"`
	WeightKG     *float64 `json:"weight_kg,omitempty"`
	Allergies    string   `json:"allergies,omitempty"`
	MedicalNotes string   `json:"medical_notes,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

// normalizeText trims surrounding whitespace and NFC-normalizes s.
// Applied to every text field on write and to search terms on read, so
// equal-looking strings compare equal in the engine.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
