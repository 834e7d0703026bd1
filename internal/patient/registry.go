package patient

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/clinicbox/patreg/internal/store"
)

// Registry issues the fixed data-access statements against the shared
// store handle. Every operation obtains the connection lazily through the
// handle, so the first call on a fresh process creates the schema.
type Registry struct {
	handle *store.Handle
}

// NewRegistry creates a Registry bound to the given handle.
func NewRegistry(h *store.Handle) *Registry {
	return &Registry{handle: h}
}

// patientColumns is the select list shared by every read, in schema order.
const patientColumns = `id, first_name, last_name, date_of_birth, gender,
	email, phone, address, height_cm, weight_kg, allergies, medical_notes, created_at`

// Register inserts one patient and returns the newly assigned id.
//
// Business-rule validation is a collaborator concern (Validate); Register
// only normalizes text and maps empty optional fields to NULL. An engine
// rejection (constraint violation, locked file) returns a
// *PersistenceError carrying the engine's message.
func (r *Registry) Register(ctx context.Context, p Patient) (int64, error) {
	st, err := r.handle.Get()
	if err != nil {
		return 0, err
	}

	res, err := st.Exec(ctx, `
		INSERT INTO patients
		(first_name, last_name, date_of_birth, gender, email, phone, address,
		 height_cm, weight_kg, allergies, medical_notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		normalizeText(p.FirstName),
		normalizeText(p.LastName),
		normalizeText(p.DateOfBirth),
		string(p.Gender),
		nullText(p.Email),
		nullText(p.Phone),
		nullText(p.Address),
		nullFloat(p.HeightCM),
		nullFloat(p.WeightKG),
		nullText(p.Allergies),
		nullText(p.MedicalNotes),
	)
	if err != nil {
		return 0, &PersistenceError{Op: "register", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &PersistenceError{Op: "register", Err: err}
	}

	return id, nil
}

// ListAll returns every patient ordered by (last_name, first_name)
// ascending. An empty table yields an empty slice, not nil and not an
// error.
func (r *Registry) ListAll(ctx context.Context) ([]Patient, error) {
	st, err := r.handle.Get()
	if err != nil {
		return nil, err
	}

	rows, err := st.Query(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		ORDER BY last_name ASC, first_name ASC
	`)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	defer rows.Close()

	return collectPatients(rows, "list")
}

// SearchByName returns patients whose first or last name contains term as
// a case-insensitive substring, ordered like ListAll.
//
// Case folding is the engine's: LIKE compares ASCII case-insensitively
// and everything else byte-for-byte. Folding only one side in Go would
// make stored non-ASCII uppercase unfindable, so the term gets the same
// treatment as the write path - normalizeText, nothing more.
//
// LIKE metacharacters in the term are escaped, so user input is always a
// literal substring and never a pattern. A blank term compiles to '%%',
// which matches every row (first_name and last_name are NOT NULL) - blank
// search therefore returns all patients, equivalent to ListAll.
func (r *Registry) SearchByName(ctx context.Context, term string) ([]Patient, error) {
	st, err := r.handle.Get()
	if err != nil {
		return nil, err
	}

	pattern := "%" + escapeLike(normalizeText(term)) + "%"
	rows, err := st.Query(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE first_name LIKE ? ESCAPE '\'
		   OR last_name LIKE ? ESCAPE '\'
		ORDER BY last_name ASC, first_name ASC
	`, pattern, pattern)
	if err != nil {
		return nil, &PersistenceError{Op: "search", Err: err}
	}
	defer rows.Close()

	return collectPatients(rows, "search")
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPatient reads one row in patientColumns order.
func scanPatient(s rowScanner) (Patient, error) {
	var (
		p      Patient
		email  sql.NullString
		phone  sql.NullString
		addr   sql.NullString
		height sql.NullFloat64
		weight sql.NullFloat64
		allerg sql.NullString
		notes  sql.NullString
	)

	err := s.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&email, &phone, &addr, &height, &weight, &allerg, &notes,
		&p.CreatedAt,
	)
	if err != nil {
		return Patient{}, fmt.Errorf("scan patient: %w", err)
	}

	p.Email = email.String
	p.Phone = phone.String
	p.Address = addr.String
	p.Allergies = allerg.String
	p.MedicalNotes = notes.String
	if height.Valid {
		v := height.Float64
		p.HeightCM = &v
	}
	if weight.Valid {
		v := weight.Float64
		p.WeightKG = &v
	}

	return p, nil
}

// collectPatients drains rows into a slice, returning an empty slice
// (never nil) for zero results.
func collectPatients(rows *sql.Rows, op string) ([]Patient, error) {
	patients := []Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, &PersistenceError{Op: op, Err: err}
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: op, Err: err}
	}

	return patients, nil
}

// nullText maps empty-after-normalization strings to NULL.
func nullText(s string) any {
	s = normalizeText(s)
	if s == "" {
		return nil
	}
	return s
}

// nullFloat maps nil pointers to NULL.
func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// escapeLike makes s safe for use inside a LIKE pattern with ESCAPE '\'.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
