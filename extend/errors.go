package extend

import "errors"

// ErrInvariantViolation is raised by invariantPanic when a debug-mode
// internal consistency check fails (a negative counter). It is
// never returned to a caller through a normal error path: per the
// module's error policy, invariant violations are fatal and must not be
// swallowed. Exported only so debug-mode recover hooks can identify it.
var ErrInvariantViolation = errors.New("extend: internal invariant violation")

// Debug, when true, enables the O(1)-amortized but non-free invariant
// assertions in counter maintenance: after every α/β update, all six
// counters of both endpoints are checked for a negative value; α/β are
// not recomputed from scratch. Off by default; tests that want the stronger
// checking should set it explicitly.
var Debug = false

func invariantPanic(msg string) {
	panic(invariantError{msg: msg})
}

type invariantError struct{ msg string }

func (e invariantError) Error() string { return ErrInvariantViolation.Error() + ": " + e.msg }

func (e invariantError) Unwrap() error { return ErrInvariantViolation }
