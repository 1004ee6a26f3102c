package ports

import (
	"context"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// RegisterInput carries all data needed to register a new user.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	IsActive  bool
}

// AuthService orchestrates registration, login and principal resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed token. Unknown username and wrong password both
	// yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// ResolvePrincipal verifies a bearer token and returns the identity it
	// encodes. Invalid tokens yield domain.ErrInvalidToken.
	ResolvePrincipal(raw string) (domain.Principal, error)
}
