package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// columnMigration describes one column added after the initial release.
type columnMigration struct {
	name string
	typ  string // SQLite column type, always nullable, no default backfill
}

// laterColumns lists columns introduced after the original release, in
// release order. Each entry is checked and applied independently so a
// failure on one column does not block the others. No added column may
// depend on another added column existing.
//
// New databases get all of these from schema.sql; this list only matters
// for databases created before the column shipped.
var laterColumns = []columnMigration{
	{name: "height_cm", typ: "REAL"},
	{name: "weight_kg", typ: "REAL"},
	{name: "allergies", typ: "TEXT"},
	{name: "medical_notes", typ: "TEXT"},
}

// runMigrations brings an existing patients table up to the current column
// set. Existing rows get NULL for every added column.
//
// Idempotent: a column already present is skipped. Partial failure leaves
// the schema mixed-but-valid; all ALTER errors are joined and returned.
func runMigrations(db *sql.DB) error {
	existing, err := tableColumns(db, "patients")
	if err != nil {
		return fmt.Errorf("inspect patients table: %w", err)
	}

	var errs []error
	for _, col := range laterColumns {
		if existing[col.name] {
			continue
		}
		// ALTER TABLE ADD COLUMN is the only schema change ever applied
		// to an existing database. Never DROP, never retype.
		stmt := fmt.Sprintf("ALTER TABLE patients ADD COLUMN %s %s", col.name, col.typ)
		if _, err := db.Exec(stmt); err != nil {
			errs = append(errs, fmt.Errorf("add column %s: %w", col.name, err))
		}
	}

	return errors.Join(errs...)
}

// tableColumns returns the set of column names currently in the catalog
// for the given table.
func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan table_info: %w", err)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table_info: %w", err)
	}

	return cols, nil
}
