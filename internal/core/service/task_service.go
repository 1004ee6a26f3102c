package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-tracker/internal/core/domain"
	"github.com/taskforge/task-tracker/internal/core/ports"
)

// TaskService enforces ownership and role rules over the task store.
//
// List and Get are deliberately unfiltered: any caller sees every task. That
// matches the reference contract and is flagged for review in DESIGN.md.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// List returns every task. An empty store yields domain.ErrTaskNotFound.
func (s *TaskService) List(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new task owned by the principal.
func (s *TaskService) Create(ctx context.Context, principal domain.Principal, input ports.TaskInput) (*domain.Task, error) {
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
		OwnerID:     principal.UserID,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Int64("task_id", created.ID).Int64("owner_id", created.OwnerID).Msg("task created")
	return created, nil
}

// Update overwrites the mutable fields of a task the principal owns. An
// ownership mismatch is reported as domain.ErrTaskNotFound, identical to a
// missing task, so callers cannot probe for other users' task ids.
func (s *TaskService) Update(ctx context.Context, principal domain.Principal, id int64, input ports.TaskInput) (*domain.Task, error) {
	task := &domain.Task{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
		OwnerID:     principal.UserID,
	}

	if err := s.repo.UpdateOwned(ctx, task, principal.UserID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("task_id", id).Int64("owner_id", principal.UserID).Msg("task updated")
	return task, nil
}

// Delete removes a task by id. Only the elevated role may delete, and it may
// delete any task regardless of ownership.
func (s *TaskService) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if !principal.IsElevated() {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("task_id", id).Str("deleted_by", principal.Username).Msg("task deleted")
	return nil
}
