package form

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Validator inspects a full value set and returns field-name to message
// mappings for invalid fields. An empty map means the values are valid.
type Validator func(values map[string]string) map[string]string

// SubmitFunc receives the validated values. An error keeps the entered
// values in place and is exposed via SubmitErr.
type SubmitFunc func(ctx context.Context, values map[string]string) error

// DefaultSuccessTTL is how long the success flag stays set after a
// successful submit before clearing on its own.
const DefaultSuccessTTL = 3 * time.Second

// ErrValidation is returned by Submit when the validator rejected the
// values. The per-field messages are available via FieldErrors.
var ErrValidation = errors.New("form: validation failed")

// ErrSubmitInFlight is returned by Submit while a previous submit is
// still running.
var ErrSubmitInFlight = errors.New("form: submit already in flight")

// Controller is a reusable controlled-form state machine.
//
// Thread-safe: all methods may be called concurrently; accessors return
// copies. The submit callback runs without the internal lock held, so
// SetField and Reset stay usable while a submit is in flight.
type Controller struct {
	mu         sync.Mutex
	initial    map[string]string
	values     map[string]string
	fieldErrs  map[string]string
	submitting bool
	success    bool
	submitErr  error
	successGen int

	validate   Validator
	submit     SubmitFunc
	successTTL time.Duration
}

// NewController creates a controller seeded with the initial values.
// validate may be nil (all values accepted); submit may be nil (submit
// succeeds without side effects).
func NewController(initial map[string]string, validate Validator, submit SubmitFunc) *Controller {
	return &Controller{
		initial:    cloneValues(initial),
		values:     cloneValues(initial),
		fieldErrs:  make(map[string]string),
		validate:   validate,
		submit:     submit,
		successTTL: DefaultSuccessTTL,
	}
}

// SetSuccessTTL overrides how long the success flag persists. Zero keeps
// the flag set until Reset or the next edit cycle. Call before Submit.
func (c *Controller) SetSuccessTTL(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.successTTL = d
}

// SetField updates one field's value and eagerly clears that field's
// error, if any. The field is not re-validated until the next Submit.
// Any stored submit failure also clears, since the user is editing again.
func (c *Controller) SetField(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[name] = value
	delete(c.fieldErrs, name)
	c.submitErr = nil
}

// Submit validates the full value set and, if clean, invokes the submit
// callback with a snapshot of the values.
//
// Returns ErrValidation when the validator rejects (callback not
// invoked), ErrSubmitInFlight when a submit is already running, or the
// callback's error (also stored in SubmitErr). On success the values
// reset to the initial defaults and the success flag is set, clearing on
// its own after the success TTL. The submitting flag is cleared on every
// path, so callers are never left stuck in "submitting".
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	// A new attempt takes over the success flag: a failed re-submit must
	// not leave the previous success visible next to fresh errors.
	c.success = false
	c.successGen++

	values := cloneValues(c.values)
	if c.validate != nil {
		if errs := c.validate(values); len(errs) > 0 {
			c.fieldErrs = errs
			c.mu.Unlock()
			return ErrValidation
		}
	}

	c.submitting = true
	c.submitErr = nil
	c.mu.Unlock()

	var err error
	if c.submit != nil {
		err = c.submit(ctx, values)
	}

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.submitErr = err
		c.mu.Unlock()
		return err
	}

	c.values = cloneValues(c.initial)
	c.fieldErrs = make(map[string]string)
	c.success = true
	c.successGen++
	gen := c.successGen
	ttl := c.successTTL
	c.mu.Unlock()

	if ttl > 0 {
		time.AfterFunc(ttl, func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			// A newer submit or reset owns the flag now
			if c.successGen == gen {
				c.success = false
			}
		})
	}

	return nil
}

// Reset restores initial values and clears errors and flags. Legal at any
// time, including while a submit is in flight.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = cloneValues(c.initial)
	c.fieldErrs = make(map[string]string)
	c.submitting = false
	c.success = false
	c.submitErr = nil
	c.successGen++
}

// Value returns the current value of one field.
func (c *Controller) Value(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[name]
}

// Values returns a copy of all current field values.
func (c *Controller) Values() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneValues(c.values)
}

// FieldError returns the validation message for one field, if present.
func (c *Controller) FieldError(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg, ok := c.fieldErrs[name]
	return msg, ok
}

// FieldErrors returns a copy of all current field errors.
func (c *Controller) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneValues(c.fieldErrs)
}

// Submitting reports whether a submit is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Success reports whether the last submit succeeded recently.
func (c *Controller) Success() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.success
}

// SubmitErr returns the last submit callback failure, if any.
func (c *Controller) SubmitErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitErr
}

func cloneValues(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
