package engine

import "fmt"

// NotFoundError indicates a referenced id is absent from its collection —
// deleted or never existed.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ValidationError indicates a required field is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidStatusError indicates a status value outside the fixed enumeration.
type InvalidStatusError struct {
	Status string
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q", e.Status)
}

// EmptyCommentError indicates a comment was blank after trimming.
type EmptyCommentError struct {
	TaskID string
}

func (e EmptyCommentError) Error() string {
	return fmt.Sprintf("empty comment for task %q", e.TaskID)
}
