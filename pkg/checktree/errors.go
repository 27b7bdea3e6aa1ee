// ABOUTME: Sentinel errors and ValidationError for caller-contract violations
// ABOUTME: Violations are rejected at the boundary; rendering itself never fails

package checktree

import (
	"errors"
	"fmt"
)

var (
	ErrMissingValue   = errors.New("missing value")
	ErrMissingLabel   = errors.New("missing label")
	ErrMissingTreeID  = errors.New("missing tree id")
	ErrInvalidState   = errors.New("invalid checked state")
	ErrPartialLeaf    = errors.New("partial state on a leaf node")
	ErrDuplicateValue = errors.New("duplicate value")
	ErrUnknownValue   = errors.New("unknown value")
)

// ValidationError locates a contract violation inside a descriptor tree.
// Path is the chain of values from the root down to the offending node.
type ValidationError struct {
	Path  []string
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	where := "root"
	if len(e.Path) > 0 {
		where = fmt.Sprintf("%q", e.Path[0])
		for _, p := range e.Path[1:] {
			where += fmt.Sprintf(" > %q", p)
		}
	}
	return fmt.Sprintf("invalid node at %s: field %s: %v", where, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(path []string, field string, err error) *ValidationError {
	return &ValidationError{Path: append([]string(nil), path...), Field: field, Err: err}
}
