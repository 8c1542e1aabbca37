package task

import "time"

// Patch is a partial update to a task. Nil fields are left untouched.
// Completion state is not part of a patch; it only changes through the
// toggle operation so the audit log can record completed/reopened.
type Patch struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *time.Time
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.DueDate == nil
}

// Apply writes the set fields onto t and returns the field-level
// changes for the audit log entry.
func (p Patch) Apply(t *Task) Details {
	changes := Details{}
	if p.Title != nil {
		t.Title = *p.Title
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
		changes["description"] = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
		changes["priority"] = string(*p.Priority)
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
		changes["due_date"] = p.DueDate.Format(time.RFC3339)
	}
	return changes
}
