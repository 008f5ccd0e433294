package handlers

import (
	"context"

	"todolist/internal/models"
	"todolist/internal/service"
)

// ---- Service mocks used by handler tests ----

type mockAuth struct {
	registerUser  *models.User
	registerToken string
	registerErr   error

	loginUser  *models.User
	loginToken string
	loginErr   error

	authUser *models.User
	authErr  error

	changePasswordErr error
	deleteAccountErr  error

	lastRegisterUsername string
	lastRegisterEmail    string
	lastLoginEmail       string
	lastAuthToken        string
	authCalls            int
	lastChangeUserID     string
	lastDeleteUserID     string
}

func (m *mockAuth) Register(_ context.Context, username, email, _ string) (*models.User, string, error) {
	m.lastRegisterUsername = username
	m.lastRegisterEmail = email
	return m.registerUser, m.registerToken, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, _ string) (*models.User, string, error) {
	m.lastLoginEmail = email
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	m.lastAuthToken = token
	m.authCalls++
	return m.authUser, m.authErr
}

func (m *mockAuth) ChangePassword(_ context.Context, userID, _ string) error {
	m.lastChangeUserID = userID
	return m.changePasswordErr
}

func (m *mockAuth) DeleteAccount(_ context.Context, userID string) error {
	m.lastDeleteUserID = userID
	return m.deleteAccountErr
}

type mockTasks struct {
	listTasks []models.Task
	listErr   error

	createTask *models.Task
	createErr  error

	updateTask *models.Task
	updateErr  error

	deleteErr error

	lastListOwner   string
	lastCreateOwner string
	lastCreateText  string
	lastUpdateOwner string
	lastUpdateID    string
	lastUpdate      service.TaskUpdate
	lastDeleteOwner string
	lastDeleteID    string
}

func (m *mockTasks) List(_ context.Context, ownerID string) ([]models.Task, error) {
	m.lastListOwner = ownerID
	return m.listTasks, m.listErr
}

func (m *mockTasks) Create(_ context.Context, ownerID, text string) (*models.Task, error) {
	m.lastCreateOwner = ownerID
	m.lastCreateText = text
	return m.createTask, m.createErr
}

func (m *mockTasks) Update(_ context.Context, ownerID, taskID string, upd service.TaskUpdate) (*models.Task, error) {
	m.lastUpdateOwner = ownerID
	m.lastUpdateID = taskID
	m.lastUpdate = upd
	return m.updateTask, m.updateErr
}

func (m *mockTasks) Delete(_ context.Context, ownerID, taskID string) error {
	m.lastDeleteOwner = ownerID
	m.lastDeleteID = taskID
	return m.deleteErr
}
