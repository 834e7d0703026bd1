// Package testutil provides deterministic seams for tests: a fixed clock
// and a sequential id generator, used where production code reaches for
// the wall clock or random UUIDs.
package testutil

import (
	"fmt"
	"sync"
	"time"
)

// FixedClock returns a clock function that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// IDSequence hands out predictable ids of the form prefix-0001, prefix-0002, ...
//
// Thread-safe: all methods are safe for concurrent use via internal mutex.
type IDSequence struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewIDSequence creates an IDSequence with the given prefix.
func NewIDSequence(prefix string) *IDSequence {
	return &IDSequence{prefix: prefix}
}

// Next returns the next id in the sequence.
func (s *IDSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%04d", s.prefix, s.n)
}
