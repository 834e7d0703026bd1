package store

import "sync"

// Handle is a lazily-initialized shared reference to one Store.
//
// Exactly one live Store exists per Handle: the first Get opens the
// database (running schema creation and migrations once) and every later
// Get returns the same instance. Concurrent early callers serialize on an
// internal mutex, so two stores are never raced into existence and the
// schema never runs twice.
//
// A failed open is NOT cached. If the database is unreachable the error
// propagates to that caller and the next Get retries construction from
// scratch, rather than replaying a cached failure indefinitely.
//
// Handle deliberately does not serialize access to the Store after
// construction; database/sql and SQLite handle concurrent statement
// execution on the single pooled connection.
type Handle struct {
	mu    sync.Mutex
	path  string
	store *Store
}

// NewHandle creates a Handle for the database at path.
// The database is not touched until the first Get.
func NewHandle(path string) *Handle {
	return &Handle{path: path}
}

// Path returns the database path this handle is bound to.
func (h *Handle) Path() string {
	return h.path
}

// Get returns the shared Store, opening it on first use.
func (h *Handle) Get() (*Store, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store != nil {
		return h.store, nil
	}

	s, err := Open(h.path)
	if err != nil {
		// Leave h.store nil so a later Get can retry.
		return nil, err
	}

	h.store = s
	return h.store, nil
}

// Close closes the shared Store, if one was ever opened.
// A later Get reopens the database.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store == nil {
		return nil
	}
	err := h.store.Close()
	h.store = nil
	return err
}
