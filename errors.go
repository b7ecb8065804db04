package acmatch

import (
	"errors"
	"fmt"
)

// ErrTooManyStates is the sentinel wrapped by a *BuildError when a Builder
// accumulates more trie states than the packed representation's 32-bit
// state field can address. Callers that want to detect this specific
// condition, rather than just any build failure, should check it with
// errors.Is.
var ErrTooManyStates = errors.New("acmatch: automaton exceeds the maximum representable state count")

// BuildError wraps a failure that occurred while constructing an automaton.
// In practice this is reached only when a Builder invariant the caller
// could not have violated through the public API is nonetheless detected
// defensively, such as the state-count overflow ErrTooManyStates reports.
type BuildError struct {
	// State is the offending state id, or -1 if the error is not tied to
	// a specific state.
	State State
	// Err is the underlying sentinel this error wraps.
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.State >= 0 {
		return fmt.Sprintf("acmatch: build failed at state %d: %s", e.State, e.Err)
	}
	return fmt.Sprintf("acmatch: build failed: %s", e.Err)
}

// Unwrap exposes the wrapped sentinel for errors.Is/errors.As.
func (e *BuildError) Unwrap() error {
	return e.Err
}
