package errors

import "fmt"

// TaskErrorType categorizes different kinds of task failures
type TaskErrorType string

const (
	// ValidationError marks misuse of a constructor or API argument.
	ValidationError TaskErrorType = "validation"
	// InvalidStateError marks an operation attempted in a state that
	// cannot serve it, e.g. executing a task with no strategy set.
	InvalidStateError TaskErrorType = "invalid_state"
)

// TaskError provides structured error information with optional details
type TaskError struct {
	Type    TaskErrorType  `json:"type"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Constructor functions for common error types
func NewValidationError(message string, details ...map[string]any) *TaskError {
	var d map[string]any
	if len(details) > 0 {
		d = details[0]
	}
	return &TaskError{
		Type:    ValidationError,
		Message: message,
		Details: d,
	}
}

func NewInvalidStateError(message string, details ...map[string]any) *TaskError {
	var d map[string]any
	if len(details) > 0 {
		d = details[0]
	}
	return &TaskError{
		Type:    InvalidStateError,
		Message: message,
		Details: d,
	}
}

// IsTaskError checks if an error is a TaskError and returns it
func IsTaskError(err error) (*TaskError, bool) {
	if taskErr, ok := err.(*TaskError); ok {
		return taskErr, true
	}
	return nil, false
}

// IsInvalidState reports whether err is a TaskError of kind InvalidStateError.
func IsInvalidState(err error) bool {
	taskErr, ok := IsTaskError(err)
	return ok && taskErr.Type == InvalidStateError
}
