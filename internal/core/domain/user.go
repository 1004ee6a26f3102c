package domain

import (
	"errors"
	"time"
)

const (
	// RoleAdmin is the elevated role; it is the only role allowed to delete tasks.
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account. Records are immutable after registration;
// ID is the only stable reference used elsewhere.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
