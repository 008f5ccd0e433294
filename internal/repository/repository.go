package repository

import (
	"context"
	"database/sql"
	"time"

	"todolist/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error
}

// Tasks is always queried with an owner id; there is deliberately no way
// to reach a row without one.
type Tasks interface {
	Create(ctx context.Context, t models.Task) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
	GetForOwner(ctx context.Context, id, ownerID string) (*models.Task, error)
	Update(ctx context.Context, t models.Task) error
	Delete(ctx context.Context, id, ownerID string) error
}

type Repository struct {
	Users Users
	Tasks Tasks
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Tasks: NewTaskRepository(db),
	}
}

// sqliteTimeFormat is the TIMESTAMP layout written on insert; the sqlite
// driver parses it back into time.Time when scanning.
const sqliteTimeFormat = "2006-01-02 15:04:05.999999999-07:00"

func nowSQLite() string {
	return time.Now().UTC().Format(sqliteTimeFormat)
}
