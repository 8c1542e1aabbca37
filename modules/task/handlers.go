package task

import (
	"context"
	"time"

	domain "github.com/example/task-manager/domain/task"
	"github.com/go-monolith/mono"
)

// Request-reply handlers registered in the mono service container.
// Responses are built from fresh state, with is_overdue derived against
// the clock at response time.

func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.svc.Create(ctx, req)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t, m.svc.now()), nil
}

func (m *TaskModule) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ID == "" {
		return TaskResponse{}, domain.NewValidationError("id", "id is required")
	}
	t, err := m.svc.Get(ctx, req.ID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t, m.svc.now()), nil
}

func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ID == "" {
		return TaskResponse{}, domain.NewValidationError("id", "id is required")
	}
	t, err := m.svc.Update(ctx, req)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(t, m.svc.now()), nil
}

func (m *TaskModule) toggleTask(ctx context.Context, req ToggleTaskRequest, _ *mono.Msg) (ToggleTaskResponse, error) {
	if req.ID == "" {
		return ToggleTaskResponse{}, domain.NewValidationError("id", "id is required")
	}
	t, completed, err := m.svc.Toggle(ctx, req.ID)
	if err != nil {
		return ToggleTaskResponse{}, err
	}
	return ToggleTaskResponse{
		Task:      toTaskResponse(t, m.svc.now()),
		Completed: completed,
	}, nil
}

func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if req.ID == "" {
		return DeleteTaskResponse{}, domain.NewValidationError("id", "id is required")
	}
	if err := m.svc.Delete(ctx, req.ID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteTaskResponse{Deleted: true, ID: req.ID}, nil
}

func (m *TaskModule) listTasks(ctx context.Context, _ ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.svc.List(ctx)
	if err != nil {
		return ListTasksResponse{}, err
	}

	now := m.svc.now()
	resp := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t, now))
	}
	return resp, nil
}

func (m *TaskModule) getStats(ctx context.Context, _ StatsRequest, _ *mono.Msg) (StatsResponse, error) {
	stats, err := m.svc.Stats(ctx)
	if err != nil {
		return StatsResponse{}, err
	}
	return StatsResponse{
		TotalTasks:        stats.TotalTasks,
		CompletedTasks:    stats.CompletedTasks,
		HighPriorityTasks: stats.HighPriorityTasks,
		OverdueTasks:      stats.OverdueTasks,
	}, nil
}

func (m *TaskModule) healthCheck(ctx context.Context, _ HealthRequest, _ *mono.Msg) (HealthResponse, error) {
	return m.svc.Health(ctx), nil
}

// toTaskResponse converts a task entity to its response form.
func toTaskResponse(t *domain.Task, now time.Time) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		IsOverdue:   t.IsOverdue(now),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	for _, entry := range t.Logs {
		resp.Logs = append(resp.Logs, LogResponse{
			ID:        entry.ID,
			Action:    string(entry.Action),
			Timestamp: entry.Timestamp,
			Details:   entry.Details,
		})
	}
	return resp
}
