package ports

import (
	"context"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// TaskInput carries the mutable fields of a task.
type TaskInput struct {
	Title       string
	Description string
	Priority    int
	Completed   bool
}

// TaskService defines use-case operations for tasks. List and Get are open to
// any caller; Create and Update require a principal; Delete additionally
// requires the elevated role.
type TaskService interface {
	List(ctx context.Context) ([]*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, principal domain.Principal, input TaskInput) (*domain.Task, error)
	Update(ctx context.Context, principal domain.Principal, id int64, input TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}
