package ports

import (
	"context"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
type UserRepository interface {
	// Create persists a new user and returns it with its assigned ID.
	// A duplicate username yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
