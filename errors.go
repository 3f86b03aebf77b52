package qgate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGate is returned (or panicked, inside the core) for a symbol
	// outside H, X, Y, Z, S.
	ErrInvalidGate = errors.New("invalid generator symbol")

	// ErrMagnitudeMismatch marks a combine of two nonzero amplitudes of
	// different magnitude, or a combine whose result leaves the exact domain.
	ErrMagnitudeMismatch = errors.New("amplitude magnitude mismatch")

	// ErrInvalidAmplitude marks a tag outside the exact value domain.
	ErrInvalidAmplitude = errors.New("invalid amplitude")

	// ErrTruncated is returned when a gate file ends before its declared length.
	ErrTruncated = errors.New("truncated gate sequence")

	// ErrNegativeLength is returned for a gate file length that does not fit
	// a signed 64-bit count.
	ErrNegativeLength = errors.New("negative gate sequence length")

	// ErrInvalidState marks a qubit state with a tag outside the domain or a
	// norm other than one.
	ErrInvalidState = errors.New("invalid qubit state")

	// ErrInvalidTable is returned when a serialized transition table is not
	// a closed automaton.
	ErrInvalidTable = errors.New("invalid transition table")
)

/*
InvariantError is the panic value used for contract violations inside the
exact core. It wraps one of the sentinels above so a recovered value can
still be inspected with errors.Is.
*/
type InvariantError struct {
	Err    error
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func invariant(err error, format string, args ...any) {
	panic(&InvariantError{Err: err, Detail: fmt.Sprintf(format, args...)})
}

// PanicError carries a worker panic across the pool's join.
type PanicError struct {
	JobID    string
	WorkerID int
	Value    any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("job %s panicked on worker %d: %v", e.JobID, e.WorkerID, e.Value)
}
