package engine

import (
	"errors"
	"fmt"
)

var errEmptyTitle = errors.New("title is required")

// NotFoundError indicates the session does not hold the requested record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func taskNotFound(id string) error    { return NotFoundError{Kind: "task", ID: id} }
func subtaskNotFound(id string) error { return NotFoundError{Kind: "subtask", ID: id} }
