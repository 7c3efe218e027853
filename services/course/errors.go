package courseService

import "fmt"

// NotFoundError reports a course/module/section/lesson id that failed to
// resolve somewhere along the requested path.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError reports malformed input, keyed by field name
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	for field, reason := range e.Errors {
		return fmt.Sprintf("validation failed: %s: %s", field, reason)
	}
	return "validation failed"
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Errors: map[string]string{field: reason}}
}

// ConflictError means a save lost the version race against another writer.
// The caller must reload the course and retry its mutation.
type ConflictError struct {
	CourseID uint
	Expected uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("course %d was modified concurrently (expected version %d)", e.CourseID, e.Expected)
}

// PersistenceError wraps a storage failure from the gateway
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("course %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
