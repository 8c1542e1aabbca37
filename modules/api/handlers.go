package api

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/example/task-manager/modules/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	taskContainer mono.ServiceContainer
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(taskContainer mono.ServiceContainer) *Handlers {
	return &Handlers{taskContainer: taskContainer}
}

// call invokes a task module request-reply service.
func call[T1 any, T2 any](h *Handlers, c *fiber.Ctx, service string, req T1, resp *T2) error {
	return helper.CallRequestReplyService(
		c.UserContext(),
		h.taskContainer,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	)
}

// CreateTask handles POST /api/v1/tasks.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var req task.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var resp task.TaskResponse
	if err := call(h, c, "create", &req, &resp); err != nil {
		return handleTaskError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTasks handles GET /api/v1/tasks.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	req := task.ListTasksRequest{}
	var resp task.ListTasksResponse
	if err := call(h, c, "list", &req, &resp); err != nil {
		return handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetTask handles GET /api/v1/tasks/:id.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	req := task.GetTaskRequest{ID: c.Params("id")}
	var resp task.TaskResponse
	if err := call(h, c, "get", &req, &resp); err != nil {
		return handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// UpdateTask handles PATCH /api/v1/tasks/:id.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	var req task.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.ID = c.Params("id")

	var resp task.TaskResponse
	if err := call(h, c, "update", &req, &resp); err != nil {
		return handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// ToggleTask handles POST /api/v1/tasks/:id/toggle.
func (h *Handlers) ToggleTask(c *fiber.Ctx) error {
	req := task.ToggleTaskRequest{ID: c.Params("id")}
	var resp task.ToggleTaskResponse
	if err := call(h, c, "toggle", &req, &resp); err != nil {
		return handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// DeleteTask handles DELETE /api/v1/tasks/:id.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	req := task.DeleteTaskRequest{ID: c.Params("id")}
	var resp task.DeleteTaskResponse
	if err := call(h, c, "delete", &req, &resp); err != nil {
		return handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetStats handles GET /api/v1/tasks/stats.
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	req := task.StatsRequest{}
	var resp task.StatsResponse
	if err := call(h, c, "stats", &req, &resp); err != nil {
		return handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Health handles GET /health. It always returns a status record; a
// failed probe becomes a descriptive string, never an error response.
func (h *Handlers) Health(c *fiber.Ctx) error {
	req := task.HealthRequest{}
	var resp task.HealthResponse
	if err := call(h, c, "health", &req, &resp); err != nil {
		resp = task.HealthResponse{
			Status:   "degraded",
			Database: "error: " + err.Error(),
		}
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// handleTaskError maps task service errors to HTTP responses. Typed
// errors do not survive the request-reply boundary, so matching is on
// the error message.
func handleTaskError(c *fiber.Ctx, err error) error {
	status, code := statusForError(err)
	if status == fiber.StatusInternalServerError {
		// Log the actual error but don't expose it to the client
		log.Printf("[api] Internal error: %v", err)
		return c.Status(status).JSON(ErrorResponse{
			Error:   code,
			Message: "An internal error occurred",
		})
	}
	return c.Status(status).JSON(ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

// statusForError picks the HTTP status and error code for a task
// service error.
func statusForError(err error) (int, string) {
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "validation failed"):
		return fiber.StatusBadRequest, "validation_error"
	case strings.Contains(errStr, "task not found"):
		return fiber.StatusNotFound, "not_found"
	case strings.Contains(errStr, "storage error (transient)"):
		return fiber.StatusServiceUnavailable, "storage_unavailable"
	case strings.Contains(errStr, "storage error"):
		return fiber.StatusInternalServerError, "storage_error"
	default:
		return fiber.StatusInternalServerError, "internal_error"
	}
}
