package domain

import "errors"

var ErrInvalidToken = errors.New("invalid token")

// Principal is the identity decoded from a verified token. It lives for a
// single request and is never persisted or cached.
type Principal struct {
	Username string
	UserID   int64
	Role     string
}

// IsElevated reports whether the principal holds the elevated role.
func (p Principal) IsElevated() bool {
	return p.Role == RoleAdmin
}
