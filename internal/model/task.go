package model

import "github.com/google/uuid"

// Task is the domain model for a todo entry.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
}

// NewTask returns a pending task.
func NewTask(id uuid.UUID, title string) Task {
	return Task{ID: id, Title: title}
}
