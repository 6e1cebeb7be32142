package expect

import (
	"errors"
	"fmt"
)

// ErrAssertion is the sentinel error for failed checks.
var ErrAssertion = errors.New("assertion failed")

// ErrCapacityExceeded is the sentinel error for soft sessions that ran
// out of room for further failures.
var ErrCapacityExceeded = errors.New("error capacity exceeded")

// AssertionError carries the failure record of a single failed check.
// In strict mode it is the panic value that aborts the chain.
type AssertionError struct {
	Failure Failure
}

// Error returns the formatted assertion failure message.
func (e *AssertionError) Error() string {
	return "assertion failed: " + e.Failure.Message
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (e *AssertionError) Unwrap() error {
	return ErrAssertion
}

// CapacityError is the panic value raised when a failing check would
// push a soft session past its configured maximum. The triggering
// failure is not recorded.
type CapacityError struct {
	Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Maximum number of errors (%d) reached", e.Max)
}

// Unwrap returns the sentinel capacity error for errors.Is.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
