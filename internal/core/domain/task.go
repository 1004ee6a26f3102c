package domain

import "errors"

var ErrTaskNotFound = errors.New("task not found")
var ErrForbidden = errors.New("access forbidden")

// Task is the record users create and manage. OwnerID references the creating
// user and never changes after creation.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Completed   bool   `json:"completed"`
	OwnerID     int64  `json:"owner_id"`
}
