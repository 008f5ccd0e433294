package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todolist/internal/models"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

var _ Tasks = (*TaskRepository)(nil)

const (
	insertTaskSQL = `INSERT INTO tasks (id, text, completed, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	selectTaskColumns  = `SELECT id, text, completed, user_id, created_at, updated_at FROM tasks`
	selectTasksByOwner = selectTaskColumns + ` WHERE user_id = ? ORDER BY created_at ASC`
	selectTaskForOwner = selectTaskColumns + ` WHERE id = ? AND user_id = ?`
	updateTaskForOwner = `UPDATE tasks SET text = ?, completed = ?, updated_at = ? WHERE id = ? AND user_id = ?`
	deleteTaskForOwner = `DELETE FROM tasks WHERE id = ? AND user_id = ?`
)

// Create inserts a new task row.
func (r *TaskRepository) Create(ctx context.Context, t models.Task) error {
	_, err := r.db.ExecContext(ctx, insertTaskSQL,
		t.ID,
		t.Text,
		t.Completed,
		t.UserID,
		t.CreatedAt.UTC().Format(sqliteTimeFormat),
		t.UpdatedAt.UTC().Format(sqliteTimeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert task for user %q: %w", t.UserID, err)
	}
	return nil
}

// ListByOwner returns the owner's tasks ordered by creation time ascending.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksByOwner, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select tasks for user %q: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 16)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return out, nil
}

// GetForOwner fetches a task only when it belongs to ownerID.
// Returns (nil, nil) when there is no such row, including the case where
// the id exists under a different owner.
func (r *TaskRepository) GetForOwner(ctx context.Context, id, ownerID string) (*models.Task, error) {
	var t models.Task
	err := r.db.QueryRowContext(ctx, selectTaskForOwner, id, ownerID).
		Scan(&t.ID, &t.Text, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %q: %w", id, err)
	}
	return &t, nil
}

// Update persists text/completed for a task, scoped by id and owner.
func (r *TaskRepository) Update(ctx context.Context, t models.Task) error {
	_, err := r.db.ExecContext(ctx, updateTaskForOwner,
		t.Text,
		t.Completed,
		t.UpdatedAt.UTC().Format(sqliteTimeFormat),
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("update task %q: %w", t.ID, err)
	}
	return nil
}

// Delete removes a task, scoped by id and owner.
func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := r.db.ExecContext(ctx, deleteTaskForOwner, id, ownerID); err != nil {
		return fmt.Errorf("delete task %q: %w", id, err)
	}
	return nil
}
