package service

import "errors"

// Domain errors for auth and task flows.
var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// ErrTaskNotFound covers both a missing id and an id owned by another
	// user; callers cannot tell the two apart.
	ErrTaskNotFound = errors.New("task not found")

	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenSignature = errors.New("token signature is invalid")
)

// ValidationError reports user-correctable bad input. Reason doubles as
// the response message.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}
