package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todolist/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	selectUserColumns       = `SELECT id, username, email, password_hash, created_at, updated_at FROM users`
	selectUserByIDSQL       = selectUserColumns + ` WHERE id = ?`
	selectUserByEmailSQL    = selectUserColumns + ` WHERE email = ?`
	selectUserByUsernameSQL = selectUserColumns + ` WHERE username = ?`
	updatePasswordHashSQL   = `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`
	deleteUserSQL           = `DELETE FROM users WHERE id = ?`
)

// Create inserts a new user row. The caller generates the id and hash.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.CreatedAt.UTC().Format(sqliteTimeFormat),
		u.UpdatedAt.UTC().Format(sqliteTimeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, id)
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, email)
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, selectUserByUsernameSQL, username)
}

func (r *UserRepository) getOne(ctx context.Context, query, arg string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", arg, err)
	}
	return &u, nil
}

// UpdatePasswordHash replaces the stored hash for the given user.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	updatedAt := nowSQLite()
	if _, err := r.db.ExecContext(ctx, updatePasswordHashSQL, hash, updatedAt, id); err != nil {
		return fmt.Errorf("update password hash for user %q: %w", id, err)
	}
	return nil
}

// Delete removes a user row; owned tasks go with it via ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("delete user %q: %w", id, err)
	}
	return nil
}
