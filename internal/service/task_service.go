package service

import (
	"context"
	"strings"
	"time"

	"todolist/internal/models"
	"todolist/internal/repository"

	"github.com/google/uuid"
)

const maxTaskTextLen = 255

// TaskUpdate carries the optional fields of an update request; nil means
// "leave unchanged".
type TaskUpdate struct {
	Text      *string
	Completed *bool
}

// TaskService wraps the task repository with validation. Every operation
// takes the owner id resolved by the auth middleware; rows of other users
// are invisible and report as not found.
type TaskService struct {
	tasks repository.Tasks
}

func NewTaskService(tasks repository.Tasks) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the owner's tasks, oldest first.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]models.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

// Create validates and persists a new task for the owner.
func (s *TaskService) Create(ctx context.Context, ownerID, text string) (*models.Task, error) {
	trimmed, err := validateTaskText(text)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := models.Task{
		ID:        uuid.NewString(),
		Text:      trimmed,
		Completed: false,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies the provided fields to an owned task. The ownership-scoped
// fetch runs first; validation happens before any field is touched.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, upd TaskUpdate) (*models.Task, error) {
	t, err := s.tasks.GetForOwner(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}

	if upd.Text != nil {
		trimmed, err := validateTaskText(*upd.Text)
		if err != nil {
			return nil, err
		}
		t.Text = trimmed
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, *t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes an owned task; a foreign or unknown id is not found.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	t, err := s.tasks.GetForOwner(ctx, taskID, ownerID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}
	return s.tasks.Delete(ctx, taskID, ownerID)
}

func validateTaskText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", validationErr("Task text cannot be empty.")
	}
	if len([]rune(trimmed)) > maxTaskTextLen {
		return "", validationErr("Task text cannot exceed 255 characters.")
	}
	return trimmed, nil
}
