package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/example/task-manager/domain/task"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the entity store for tasks and their audit logs. Every
// mutation method appends the matching TaskLog inside the same
// transaction, so a task write without its log entry (or the reverse)
// is never visible to readers.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// storageErr classifies a database failure. Constraint violations mean
// corrupted or conflicting state and are fatal; everything else
// (unreachable store, timeout, busy database) is transient.
func storageErr(err error) error {
	transient := true
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrInvalidData):
		transient = false
	}
	return &domain.StorageError{Transient: transient, Err: err}
}

func newLogEntry(taskID string, action domain.LogAction, details domain.Details, now time.Time) *domain.TaskLog {
	return &domain.TaskLog{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Action:    action,
		Timestamp: now,
		Details:   details,
	}
}

// Create persists a new task and its "created" log entry atomically.
// The store assigns the ID and both timestamps.
func (r *Repository) Create(ctx context.Context, t *domain.Task, now time.Time) error {
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		entry := newLogEntry(t.ID, domain.ActionCreated, domain.Details{"title": t.Title}, now)
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to append task log: %w", err)
		}
		return nil
	})
	if err != nil {
		return storageErr(err)
	}
	return nil
}

// FindByID retrieves a task with its audit logs, newest first.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC")
		}).
		First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, storageErr(fmt.Errorf("failed to find task: %w", err))
	}
	return &t, nil
}

// Update applies a patch to an existing task and appends the "updated"
// log entry carrying the field-level changes, all in one transaction.
// The read happens inside the transaction so concurrent writes to the
// same row serialize.
func (r *Repository) Update(ctx context.Context, id string, patch domain.Patch, now time.Time) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return err
		}
		changes := patch.Apply(&t)
		t.UpdatedAt = now
		if err := tx.Save(&t).Error; err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		entry := newLogEntry(t.ID, domain.ActionUpdated, changes, now)
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to append task log: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, storageErr(err)
	}
	return &t, nil
}

// Toggle flips a task's completion state and appends a "completed" or
// "reopened" log entry depending on the new state, atomically.
func (r *Repository) Toggle(ctx context.Context, id string, now time.Time) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return err
		}
		t.Completed = !t.Completed
		t.UpdatedAt = now
		if err := tx.Save(&t).Error; err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}

		action := domain.ActionReopened
		if t.Completed {
			action = domain.ActionCompleted
		}
		entry := newLogEntry(t.ID, action, domain.Details{"completed": t.Completed}, now)
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to append task log: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, storageErr(err)
	}
	return &t, nil
}

// Delete removes a task and all its audit logs. The cascade is
// explicit: child log rows are deleted in the same transaction as the
// parent, not via an ORM cascade declaration.
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t domain.Task
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.TaskLog{}, "task_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete task logs: %w", err)
		}
		if err := tx.Delete(&domain.Task{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.NotFoundError{ID: id}
		}
		return storageErr(err)
	}
	return nil
}

// List retrieves all tasks, newest created first. Each call recomputes
// from current store state.
func (r *Repository) List(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, storageErr(fmt.Errorf("failed to list tasks: %w", err))
	}
	return tasks, nil
}

// Snapshot reads all tasks inside a single transaction, giving the
// stats derivation a consistent point-in-time view.
func (r *Repository) Snapshot(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Find(&tasks).Error
	})
	if err != nil {
		return nil, storageErr(fmt.Errorf("failed to snapshot tasks: %w", err))
	}
	return tasks, nil
}

// Ping performs a trivial round-trip against the store.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
