package tasks

import (
	"fmt"
	"strings"
	"time"

	"task-strategies/errors"

	"github.com/google/uuid"
)

// Priority classifies how quickly a task should be handled.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// String returns the wire-level name of the priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid reports whether the priority is one of the known levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParsePriority converts a string into a Priority.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown priority %q: must be low, medium, high or urgent", s)
	}
	return p, nil
}

// StatusCompleted is the only status a task ever reports.
// A task without a completion timestamp has no status at all.
const StatusCompleted = "completed"

// Task is a unit of work handled by a processing strategy.
//
// Everything except the completion timestamp is fixed at construction.
// CompletedAt starts nil and is set exactly once by MarkCompleted.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Priority    Priority   `json:"priority"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewTask constructs a task with a fresh ID and creation timestamp.
// The title must be non-empty and the priority must be a known level.
func NewTask(title string, priority Priority, description string) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.NewValidationError("task title is required")
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("unknown task priority", map[string]any{
			"priority": string(priority),
		})
	}

	return &Task{
		ID:          uuid.New().String(),
		Title:       title,
		Priority:    priority,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// MarkCompleted records the completion time of the task.
//
// Completion is a one-way transition: the first call wins and later calls
// are no-ops, so the timestamp of the original completion is preserved.
// The reference behavior overwrote the timestamp on repeated calls; guarding
// here keeps the "set exactly once" invariant checkable by callers.
func (t *Task) MarkCompleted() {
	if t.CompletedAt != nil {
		return
	}
	now := time.Now().UTC()
	t.CompletedAt = &now
}

// Status returns "completed" once the task has been marked completed,
// and an empty string before that. It never fails.
func (t *Task) Status() string {
	if t.CompletedAt != nil {
		return StatusCompleted
	}
	return ""
}

// IsCompleted reports whether the task has been marked completed.
func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}
