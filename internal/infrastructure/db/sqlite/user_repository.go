package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// UserRepository persists user credentials in the users table.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()

	res, err := r.store.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.IsActive, now.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user id: %w", err)
	}

	created := *user
	created.ID = id
	created.CreatedAt = now
	return &created, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var (
		u         domain.User
		createdAt int64
	)
	err := r.store.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, first_name, last_name, role, is_active, created_at
		FROM users WHERE username = ?`, username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	u.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &u, nil
}
