package task

import (
	"context"
	"time"

	domain "github.com/example/task-manager/domain/task"
)

// storeTimeout bounds every store operation; past it the call fails
// with a transient storage error. Retrying is the caller's concern.
const storeTimeout = 5 * time.Second

// Service orchestrates task mutations and queries. It is the only
// legal mutation path: validation first, then the repository performs
// the task write and its audit-log append as one atomic unit.
type Service struct {
	repo *Repository
	now  func() time.Time
}

// NewService creates a task service using the wall clock.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

// Create validates the fields and persists a new task with its
// "created" log entry.
func (s *Service) Create(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	now := s.now()
	if err := validateCreate(req, now); err != nil {
		return nil, err
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		p, err := parsePriority(req.Priority)
		if err != nil {
			return nil, err
		}
		priority = p
	}

	t := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, t, now); err != nil {
		return nil, err
	}
	return t, nil
}

// Get retrieves a task with its audit logs.
func (s *Service) Get(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.FindByID(ctx, id)
}

// Update validates and applies a partial update, refreshing updated_at
// and logging the field-level changes.
func (s *Service) Update(ctx context.Context, req UpdateTaskRequest) (*domain.Task, error) {
	now := s.now()

	patch := domain.Patch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Priority != nil {
		p, err := parsePriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		patch.Priority = &p
	}
	if patch.Empty() {
		return nil, domain.NewValidationError("fields", "no fields to update")
	}
	if err := validatePatch(patch, now); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Update(ctx, req.ID, patch, now)
}

// Toggle flips completion; the new state decides whether the log entry
// records "completed" or "reopened".
func (s *Service) Toggle(ctx context.Context, id string) (*domain.Task, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	t, err := s.repo.Toggle(ctx, id, s.now())
	if err != nil {
		return nil, false, err
	}
	return t, t.Completed, nil
}

// Delete removes a task and all its audit logs.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

// List returns all tasks, newest created first.
func (s *Service) List(ctx context.Context) ([]*domain.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Stats derives the aggregate counters from a consistent snapshot.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	tasks, err := s.repo.Snapshot(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(tasks, s.now()), nil
}

// Health probes the store with a trivial round-trip. It never returns
// an error; failures become a descriptive string in the record.
func (s *Service) Health(ctx context.Context) HealthResponse {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Ping(ctx); err != nil {
		return HealthResponse{Status: "degraded", Database: "error: " + err.Error()}
	}
	return HealthResponse{Status: "healthy", Database: "connected"}
}
