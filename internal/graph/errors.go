package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by the panics raised on contract violations.
//
// The engine treats these as programmer errors: graph construction guarantees
// they cannot happen in correct usage, so they are raised with panic rather
// than returned. Callers that recover can classify them with errors.Is.
var (
	// ErrUnknownNode is raised when an identifier does not belong to the session.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrMissingValue is raised when a value is read before it was computed or fed.
	ErrMissingValue = errors.New("graph: missing value")

	// ErrMissingGradient is raised when a node has no entry in the derivative map.
	ErrMissingGradient = errors.New("graph: missing gradient")

	// ErrPlaceholderEval is raised when a placeholder is reached without a fed value.
	ErrPlaceholderEval = errors.New("graph: placeholder has no fed value")
)

func fault(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}
