package api

import (
	"errors"
	"testing"

	domain "github.com/example/task-manager/domain/task"
	"github.com/gofiber/fiber/v2"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation error",
			err:        domain.NewValidationError("due_date", "due date cannot be in the past"),
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "validation_error",
		},
		{
			name:       "not found",
			err:        &domain.NotFoundError{ID: "abc"},
			wantStatus: fiber.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "transient storage error",
			err:        &domain.StorageError{Transient: true, Err: errors.New("database is locked")},
			wantStatus: fiber.StatusServiceUnavailable,
			wantCode:   "storage_unavailable",
		},
		{
			name:       "fatal storage error",
			err:        &domain.StorageError{Err: errors.New("constraint failed")},
			wantStatus: fiber.StatusInternalServerError,
			wantCode:   "storage_error",
		},
		{
			name:       "unknown error",
			err:        errors.New("something odd"),
			wantStatus: fiber.StatusInternalServerError,
			wantCode:   "internal_error",
		},
		{
			name:       "error flattened to a string by the service boundary",
			err:        errors.New("validation failed: title: title cannot be empty"),
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "validation_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := statusForError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}
