package models

import "time"

// Task is a single to-do item. UserID is set on creation and never
// reassigned; the tasks table enforces it with a cascading foreign key.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
