package service

import (
	"context"
	"time"

	"todolist/internal/models"
	"todolist/internal/repository"
)

// Authorization covers the credential store plus token lifecycle.
type Authorization interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
	ChangePassword(ctx context.Context, userID, password string) error
	DeleteAccount(ctx context.Context, userID string) error
}

// Tasks exposes owner-scoped task CRUD.
type Tasks interface {
	List(ctx context.Context, ownerID string) ([]models.Task, error)
	Create(ctx context.Context, ownerID, text string) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID string, upd TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}

// Config carries auth settings resolved once at startup.
type Config struct {
	TokenSecret string
	TokenTTL    time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Tasks
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	tokens := NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Tasks:         NewTaskService(repos.Tasks),
	}
}
