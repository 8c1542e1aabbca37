package task

import (
	"strings"
	"time"

	domain "github.com/example/task-manager/domain/task"
)

// Validation runs before any store mutation and has no side effects.
// The current time is an explicit parameter so tests can use fixed
// clocks.

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return domain.NewValidationError("title", "title cannot be empty")
	}
	return nil
}

func validateDueDate(due *time.Time, now time.Time) error {
	if due != nil && due.Before(now) {
		return domain.NewValidationError("due_date", "due date cannot be in the past")
	}
	return nil
}

// parsePriority maps the wire value onto the priority enum. An empty
// value means "use the default" and is resolved by the caller.
func parsePriority(value string) (domain.Priority, error) {
	p := domain.Priority(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", domain.NewValidationError("priority", "priority must be one of low, medium, high")
	}
	return p, nil
}

func validateCreate(req CreateTaskRequest, now time.Time) error {
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if req.Priority != "" {
		if _, err := parsePriority(req.Priority); err != nil {
			return err
		}
	}
	return validateDueDate(req.DueDate, now)
}

func validatePatch(patch domain.Patch, now time.Time) error {
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.NewValidationError("priority", "priority must be one of low, medium, high")
	}
	return validateDueDate(patch.DueDate, now)
}
