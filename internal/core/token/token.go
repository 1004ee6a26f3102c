// Package token issues and verifies the HS256-signed access tokens that carry
// a user's identity between requests.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

const defaultTTL = 20 * time.Minute

// Claims is the signed claim set: identity plus expiry.
type Claims struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies access tokens with a process-wide symmetric
// secret. Rotating the secret invalidates all outstanding tokens, which is
// acceptable given the short TTL.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. The secret must be non-empty; a
// non-positive ttl falls back to the 20 minute default.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue returns a signed token encoding {username, user_id, role, exp}.
func (s *Service) Issue(username string, userID int64, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Username: username,
		UserID:   userID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes and validates a token, returning the principal it encodes.
// Bad signature, wrong algorithm, malformed structure, expiry and missing
// identity claims all return domain.ErrInvalidToken: callers must not be able
// to tell why a token was rejected.
func (s *Service) Verify(raw string) (domain.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	if claims.Username == "" || claims.UserID == 0 {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{
		Username: claims.Username,
		UserID:   claims.UserID,
		Role:     claims.Role,
	}, nil
}
