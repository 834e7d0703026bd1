// Package patient implements the registry's data-access operations over
// the embedded store.
//
// Patients are append-only: records are created by Register and never
// updated or deleted. All listing and search results are ordered by
// (last_name, first_name) ascending, matching the covering index.
//
// Text fields are NFC-normalized before storage and before search, so a
// name entered with decomposed codepoints is still found later.
package patient
