package task

import (
	"testing"
	"time"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		due  *time.Time
		want bool
	}{
		{
			name: "no due date",
			due:  nil,
			want: false,
		},
		{
			name: "due date in the past",
			due:  &past,
			want: true,
		},
		{
			name: "due date in the future",
			due:  &future,
			want: false,
		},
		{
			name: "due date exactly now",
			due:  &now,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Title: "test", DueDate: tt.due}
			if got := task.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOverdueIgnoresCompletion(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	task := &Task{Title: "done late", Completed: true, DueDate: &past}
	if !task.IsOverdue(now) {
		t.Error("expected completed task with past due date to still report overdue")
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tasks := []*Task{
		{Title: "a", Priority: PriorityLow, Completed: false, DueDate: &past},
		{Title: "b", Priority: PriorityMedium, Completed: true, DueDate: &past},
		{Title: "c", Priority: PriorityHigh, Completed: false, DueDate: &future},
		{Title: "d", Priority: PriorityHigh, Completed: true},
	}

	got := ComputeStats(tasks, now)

	if got.TotalTasks != 4 {
		t.Errorf("TotalTasks = %d, want 4", got.TotalTasks)
	}
	if got.CompletedTasks != 2 {
		t.Errorf("CompletedTasks = %d, want 2", got.CompletedTasks)
	}
	if got.HighPriorityTasks != 2 {
		t.Errorf("HighPriorityTasks = %d, want 2", got.HighPriorityTasks)
	}
	// "b" is past due but completed, so only "a" counts
	if got.OverdueTasks != 1 {
		t.Errorf("OverdueTasks = %d, want 1", got.OverdueTasks)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	got := ComputeStats(nil, time.Now())
	if got != (Stats{}) {
		t.Errorf("ComputeStats(nil) = %+v, want zero value", got)
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.Valid() {
			t.Errorf("expected %q to be valid", p)
		}
	}
	for _, p := range []Priority{"", "urgent", "LOW"} {
		if p.Valid() {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestPatchApply(t *testing.T) {
	due := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	title := "new title"
	priority := PriorityHigh

	task := &Task{
		Title:       "old title",
		Description: "old description",
		Priority:    PriorityMedium,
	}

	patch := Patch{Title: &title, Priority: &priority, DueDate: &due}
	changes := patch.Apply(task)

	if task.Title != title {
		t.Errorf("Title = %q, want %q", task.Title, title)
	}
	if task.Priority != PriorityHigh {
		t.Errorf("Priority = %q, want %q", task.Priority, PriorityHigh)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", task.DueDate, due)
	}
	if task.Description != "old description" {
		t.Errorf("Description changed unexpectedly: %q", task.Description)
	}

	// Changes carry only the fields actually applied
	if len(changes) != 3 {
		t.Errorf("len(changes) = %d, want 3", len(changes))
	}
	if changes["title"] != title {
		t.Errorf("changes[title] = %v, want %q", changes["title"], title)
	}
	if _, ok := changes["description"]; ok {
		t.Error("changes should not include description")
	}
}

func TestPatchEmpty(t *testing.T) {
	if !(Patch{}).Empty() {
		t.Error("zero patch should be empty")
	}
	title := "t"
	if (Patch{Title: &title}).Empty() {
		t.Error("patch with title should not be empty")
	}
}
