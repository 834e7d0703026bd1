// Package store provides SQLite-backed durable storage for the patient
// registry.
//
// The registry persists a single append-only table:
//   - Patients: registration records, never updated or deleted
//
// # Critical Patterns
//
// CP-1: Idempotent Schema
//   - schema.sql uses only CREATE ... IF NOT EXISTS statements
//   - Opening the same database twice produces an identical schema
//
// CP-2: Additive Migrations
//   - Columns introduced after the initial release are added one at a time
//   - Each ALTER TABLE is checked and applied independently, so a failure
//     on one column never blocks the others
//   - Columns are never dropped or retyped
//
// CP-3: Single Shared Handle
//   - Handle hands out exactly one live *Store per process
//   - A failed open is never cached; the next Get retries
//
// # Database Configuration
//
//   - WAL mode: Concurrent readers in other processes during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for cross-process locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Cross-process visibility and write ordering are delegated entirely to
// SQLite's WAL protocol; this package adds no consistency machinery of
// its own.
package store
