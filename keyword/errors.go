package keyword

import (
	"errors"
	"fmt"
)

// Sentinel errors for the keyword index's state machine (spec.md §7).
//
// Callers should compare against these with errors.Is; OpError wraps
// them with the operation and keyword that triggered the failure,
// following the CompileError/BuildError pattern in the teacher's nfa
// package.
var (
	// ErrInvalidKeyword is returned when Enter receives an empty keyword.
	ErrInvalidKeyword = errors.New("keyword: invalid keyword")

	// ErrAlreadyFrozen is returned when Enter or Fix is called on a
	// frozen index.
	ErrAlreadyFrozen = errors.New("keyword: index already frozen")

	// ErrNotFrozen is returned when Query is called before Fix.
	ErrNotFrozen = errors.New("keyword: index not frozen")
)

// OpError reports the operation and (where relevant) keyword involved in
// a failed Index method call.
type OpError struct {
	Op      string
	Keyword []byte
	Err     error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Keyword != nil {
		return fmt.Sprintf("keyword: %s %q: %v", e.Op, e.Keyword, e.Err)
	}
	return fmt.Sprintf("keyword: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the sentinel error for errors.Is/errors.As.
func (e *OpError) Unwrap() error {
	return e.Err
}
