package store

import "fmt"

// ConnectionError indicates the underlying database file or engine could
// not be reached at all (bad path, locked file, corrupt header).
//
// A ConnectionError is transient from the Handle's point of view: it is
// never cached, and the next Get retries the open from scratch.
type ConnectionError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// SchemaError indicates schema creation or migration failed after the
// database itself was reachable. Fatal to startup; surfaced to the caller
// of Handle.Get with the engine's original message intact.
type SchemaError struct {
	Err error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %v", e.Err)
}

// Unwrap returns the underlying engine error.
func (e *SchemaError) Unwrap() error {
	return e.Err
}
