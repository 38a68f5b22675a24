package family

import "errors"

// Validation errors abort the operation before any mutation is applied.
// Dangling ids in spouse or parent sets are not errors: they are dropped
// silently so the graph stays usable after partial imports.
var (
	// ErrNameRequired is returned when a person is added or updated
	// without a display name.
	ErrNameRequired = errors.New("person name is required")

	// ErrNotFound is returned when an operation targets an id that does
	// not resolve to a record.
	ErrNotFound = errors.New("person not found")

	// ErrSelfSpouse is returned when a spouse assignment references the
	// person themselves.
	ErrSelfSpouse = errors.New("a person cannot be their own spouse")

	// ErrCycleDetected is returned by forest and generation traversal
	// when a parent/child chain loops back on itself.
	ErrCycleDetected = errors.New("cycle detected in parent/child links")
)
