// Package console executes arbitrary parameterized SQL against the
// registry database and returns a uniform success/data/error envelope.
//
// This is deliberately an open administrative surface, not a constrained
// API: the statement text is free-form and any statement type is allowed.
// The only safety boundary is parameter binding - values are never
// interpolated into the statement text, so the params path cannot change
// statement structure.
//
// Execution failures never escape as errors; every failure is captured
// into the envelope's error field so a console UI can render it inline.
package console
