package task

import "time"

// Stats is the aggregate view over all tasks.
type Stats struct {
	TotalTasks        int `json:"total_tasks"`
	CompletedTasks    int `json:"completed_tasks"`
	HighPriorityTasks int `json:"high_priority_tasks"`
	OverdueTasks      int `json:"overdue_tasks"`
}

// ComputeStats derives the aggregate counters from a snapshot of tasks.
// Overdue counts only incomplete tasks whose due date has passed. Pure;
// callers are responsible for handing in a consistent snapshot.
func ComputeStats(tasks []*Task, now time.Time) Stats {
	var s Stats
	s.TotalTasks = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.CompletedTasks++
		}
		if t.Priority == PriorityHigh {
			s.HighPriorityTasks++
		}
		if !t.Completed && t.IsOverdue(now) {
			s.OverdueTasks++
		}
	}
	return s
}
