package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-tracker/internal/core/domain"
	"github.com/taskforge/task-tracker/internal/core/ports"
)

// AuthService implements registration, login and principal resolution.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register hashes the supplied password and persists a new user. A duplicate
// username yields domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		IsActive:     input.IsActive,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a token. Unknown username and wrong
// password collapse to the same error so usernames cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.ID, user.Role)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return token, nil
}

// ResolvePrincipal verifies a bearer token and returns the identity it encodes.
func (s *AuthService) ResolvePrincipal(raw string) (domain.Principal, error) {
	return s.tokens.Verify(raw)
}
