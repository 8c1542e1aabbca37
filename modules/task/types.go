package task

import (
	"time"

	domain "github.com/example/task-manager/domain/task"
)

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// GetTaskRequest is the request for retrieving a task.
type GetTaskRequest struct {
	ID string `json:"id"`
}

// UpdateTaskRequest is the request for partially updating a task.
// Nil fields are left unchanged.
type UpdateTaskRequest struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// ToggleTaskRequest is the request for flipping a task's completion.
type ToggleTaskRequest struct {
	ID string `json:"id"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	ID string `json:"id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ListTasksRequest is the request for listing tasks.
type ListTasksRequest struct{}

// StatsRequest is the request for aggregate statistics.
type StatsRequest struct{}

// HealthRequest is the request for the store dependency probe.
type HealthRequest struct{}

// HealthResponse reports service and database reachability. It is
// always returned, never an error.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// LogResponse represents a task audit log entry in responses.
type LogResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
	Details   domain.Details `json:"details"`
}

// TaskResponse represents a task in responses. IsOverdue is derived
// from the due date at response time, never persisted.
type TaskResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Completed   bool          `json:"completed"`
	Priority    string        `json:"priority"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	IsOverdue   bool          `json:"is_overdue"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Logs        []LogResponse `json:"logs,omitempty"`
}

// ToggleTaskResponse is the response after toggling completion.
type ToggleTaskResponse struct {
	Task      TaskResponse `json:"task"`
	Completed bool         `json:"completed"`
}

// ListTasksResponse is the response containing all tasks, newest first.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// StatsResponse is the aggregate statistics response.
type StatsResponse struct {
	TotalTasks        int `json:"total_tasks"`
	CompletedTasks    int `json:"completed_tasks"`
	HighPriorityTasks int `json:"high_priority_tasks"`
	OverdueTasks      int `json:"overdue_tasks"`
}
