package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
)

// createdAtLayout matches the default assigned by the engine
// (strftime '%Y-%m-%dT%H:%M:%fZ').
const createdAtLayout = "2006-01-02T15:04:05.000Z"

// ExportPatient is the export-file shape of one record: id is omitted and
// created_at is reformatted to a plain registration date. All other field
// values round-trip unchanged.
type ExportPatient struct {
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	DateOfBirth  string   `json:"date_of_birth"`
	Gender       Gender   `json:"gender"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Address      string   `json:"address,omitempty"`
	HeightCM     *float64 `json:"height_cm,omitempty"`
	WeightKG     *float64 `json:"weight_kg,omitempty"`
	Allergies    string   `json:"allergies,omitempty"`
	MedicalNotes string   `json:"medical_notes,omitempty"`
	RegisteredOn string   `json:"registered_on"`
}

// Document is the downloadable JSON export.
type Document struct {
	ExportID    string          `json:"export_id"`
	GeneratedAt string          `json:"generated_at"`
	Patients    []ExportPatient `json:"patients"`
}

// Exporter writes the full patient listing to a JSON file.
//
// Now and NewID are seams for deterministic tests; zero values fall back
// to the wall clock and random UUIDs.
type Exporter struct {
	Registry *Registry
	Dir      string // destination directory

	Now   func() time.Time
	NewID func() string
}

// Export fetches all patients, builds the document and writes it to
// Dir/patients-YYYY-MM-DD.json. The write is atomic - a crashed export
// never leaves a torn file. Returns the written path.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	newID := uuid.NewString
	if e.NewID != nil {
		newID = e.NewID
	}

	patients, err := e.Registry.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	doc := BuildDocument(patients, now(), newID())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: marshal document: %w", err)
	}
	data = append(data, '\n')

	name := fmt.Sprintf("patients-%s.json", now().UTC().Format(dateLayout))
	path := filepath.Join(e.Dir, name)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}

	return path, nil
}

// BuildDocument assembles the export document for the given patients.
func BuildDocument(patients []Patient, now time.Time, exportID string) Document {
	out := make([]ExportPatient, len(patients))
	for i, p := range patients {
		out[i] = ExportPatient{
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			DateOfBirth:  p.DateOfBirth,
			Gender:       p.Gender,
			Email:        p.Email,
			Phone:        p.Phone,
			Address:      p.Address,
			HeightCM:     p.HeightCM,
			WeightKG:     p.WeightKG,
			Allergies:    p.Allergies,
			MedicalNotes: p.MedicalNotes,
			RegisteredOn: registeredOn(p.CreatedAt),
		}
	}

	return Document{
		ExportID:    exportID,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Patients:    out,
	}
}

// registeredOn reduces an engine-assigned created_at timestamp to a date.
// Falls back to the raw value if the timestamp is in an unexpected shape.
func registeredOn(createdAt string) string {
	if t, err := time.Parse(createdAtLayout, createdAt); err == nil {
		return t.Format(dateLayout)
	}
	if len(createdAt) >= len(dateLayout) {
		if t, err := time.Parse(dateLayout, createdAt[:len(dateLayout)]); err == nil {
			return t.Format(dateLayout)
		}
	}
	return createdAt
}
