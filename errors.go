package immutree

import "errors"

// ErrEmptyCollection is raised if a value is requested from an empty collection,
// e.g. when peeking at an empty list.
var ErrEmptyCollection = errors.New("empty collection")

// ErrInvariantViolation is raised if an operation is invoked under a violated
// precondition, e.g. a tree rotation without the required child.
// It always denotes a programming error and is never recovered internally.
var ErrInvariantViolation = errors.New("invariant violation")
