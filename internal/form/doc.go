// Package form provides a generic state machine for controlled-input
// forms, plus CUE-defined form specifications.
//
// The Controller is not patient-specific: it tracks field values,
// per-field validation errors, a submit-in-flight flag and a transient
// success flag, and drives a caller-supplied validator and async submit
// callback. Field errors clear eagerly on edit and are only recomputed on
// submit.
//
// Form shapes (field names, labels, required flags, formats, enumerated
// options) are declared in CUE and compiled into initial values and a
// Validator, so the registration surface and its validation rules come
// from one declaration.
package form
