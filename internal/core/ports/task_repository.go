package ports

import (
	"context"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	List(ctx context.Context) ([]*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	// Create persists a new task and returns it with its assigned ID.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// UpdateOwned overwrites title/description/priority/completed on the task
	// matching both id and ownerID. An ownership mismatch is indistinguishable
	// from a missing row: both yield domain.ErrTaskNotFound.
	UpdateOwned(ctx context.Context, task *domain.Task, ownerID int64) error
	// Delete removes the task with the given id regardless of owner.
	Delete(ctx context.Context, id int64) error
}
