package task

import "time"

// Priority is the importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a to-do item. IDs and timestamps are assigned by the store;
// callers never set them.
type Task struct {
	ID          string     `gorm:"primarykey;size:36" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:2000" json:"description"`
	Completed   bool       `gorm:"not null;default:false;index:idx_tasks_completed_created" json:"completed"`
	Priority    Priority   `gorm:"size:10;not null;default:medium;index:idx_tasks_priority_due" json:"priority"`
	DueDate     *time.Time `gorm:"index:idx_tasks_priority_due" json:"due_date,omitempty"`
	CreatedAt   time.Time  `gorm:"index:idx_tasks_completed_created;autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime:false" json:"updated_at"`
	Logs        []TaskLog  `gorm:"foreignKey:TaskID" json:"logs,omitempty"`
}

// TableName returns the table name for Task.
func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether the task's due date has passed as of now.
// Never persisted; computed at read time.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now)
}

// LogAction names the mutation a TaskLog records. The set is open;
// new kinds may be added without a schema change.
type LogAction string

const (
	ActionCreated   LogAction = "created"
	ActionUpdated   LogAction = "updated"
	ActionCompleted LogAction = "completed"
	ActionReopened  LogAction = "reopened"
)

// TaskLog is an immutable audit record of a single task mutation.
// Logs are only ever written in the same transaction as the mutation
// they describe, and only ever removed when their task is deleted.
type TaskLog struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	TaskID    string    `gorm:"size:36;not null;index" json:"task_id"`
	Action    LogAction `gorm:"size:50;not null" json:"action"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Details   Details   `gorm:"type:text" json:"details"`
}

// TableName returns the table name for TaskLog.
func (TaskLog) TableName() string {
	return "task_logs"
}
