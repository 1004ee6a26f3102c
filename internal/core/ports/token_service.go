package ports

import "github.com/taskforge/task-tracker/internal/core/domain"

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService interface {
	Issue(username string, userID int64, role string) (string, error)
	// Verify decodes and validates a token. Every failure mode (bad
	// signature, malformed structure, expired, missing identity claims)
	// collapses to domain.ErrInvalidToken so callers cannot distinguish why
	// verification failed.
	Verify(raw string) (domain.Principal, error)
}
