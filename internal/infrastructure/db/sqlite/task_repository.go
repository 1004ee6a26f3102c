package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// TaskRepository persists tasks in the tasks table.
type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, title, description, priority, completed, COALESCE(owner_id, 0)
		FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Completed, &t.OwnerID); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.store.db.QueryRowContext(ctx, `
		SELECT id, title, description, priority, completed, COALESCE(owner_id, 0)
		FROM tasks WHERE id = ?`, id,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Completed, &t.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	res, err := r.store.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, priority, completed, owner_id)
		VALUES (?, ?, ?, ?, ?)`,
		task.Title, task.Description, task.Priority, task.Completed, task.OwnerID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert task id: %w", err)
	}

	created := *task
	created.ID = id
	return &created, nil
}

// UpdateOwned overwrites the mutable fields of the task matching both id and
// ownerID. Ownership is a filter predicate, not a separate check: a mismatched
// owner and a missing row are indistinguishable.
func (r *TaskRepository) UpdateOwned(ctx context.Context, task *domain.Task, ownerID int64) error {
	res, err := r.store.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, description = ?, priority = ?, completed = ?
		WHERE id = ? AND owner_id = ?`,
		task.Title, task.Description, task.Priority, task.Completed, task.ID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task rows: %w", err)
	}
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task rows: %w", err)
	}
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
