package patient

import "fmt"

// PersistenceError indicates the engine rejected a specific data operation
// (insert, list, search). The engine's original message is preserved, not
// re-wrapped into an opaque code - operators debugging a failed statement
// need the underlying text.
type PersistenceError struct {
	Op  string // "register", "list", "search"
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
