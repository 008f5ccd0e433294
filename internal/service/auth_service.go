package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"todolist/internal/models"
	"todolist/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 30
)

// AuthService handles registration, login and token resolution.
type AuthService struct {
	users  repository.Users
	tokens *TokenManager
}

func NewAuthService(users repository.Users, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register validates input, checks both uniqueness constraints up front
// (email first, so the more specific error wins) and stores a bcrypt hash.
// Returns the created user and a freshly issued token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	if err := validateRegistration(username, email, password); err != nil {
		return nil, "", err
	}

	byEmail, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	byUsername, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if byEmail != nil {
		return nil, "", ErrDuplicateEmail
	}
	if byUsername != nil {
		return nil, "", ErrDuplicateUsername
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	u.PasswordHash = ""
	return &u, token, nil
}

// Login verifies credentials by email lookup plus bcrypt comparison and
// issues a token. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	u.PasswordHash = ""
	return u, token, nil
}

// Authenticate resolves a bearer token to a live user. Exactly one lookup
// is performed; the returned user carries no password hash.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	userID, err := s.tokens.Parse(accessToken)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	u.PasswordHash = ""
	return u, nil
}

// ChangePassword re-hashes only when the password actually changed.
func (s *AuthService) ChangePassword(ctx context.Context, userID, password string) error {
	if strings.TrimSpace(password) == "" {
		return validationErr("Password cannot be empty.")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	// Same password as stored: nothing to do, keep the existing hash.
	if verifyPassword(u.PasswordHash, password) == nil {
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(ctx, userID, hash)
}

// DeleteAccount removes the user; the storage layer cascades to tasks.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}

func validateRegistration(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return validationErr("Please enter all fields.")
	}
	if n := len([]rune(username)); n < usernameMinLen || n > usernameMaxLen {
		return validationErr("Username must be between 3 and 30 characters.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return validationErr("Invalid email address.")
	}
	if strings.TrimSpace(password) == "" {
		return validationErr("Password cannot be empty.")
	}
	return nil
}

// helper: hash password with a per-call random salt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash; never compare hashes directly
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
