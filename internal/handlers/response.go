package handlers

import (
	"errors"
	"net/http"

	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgInternalError = "Internal server error."
	msgMissingFields = "Please enter all fields."
	msgInvalidBody   = "Invalid request body."
)

// errorStatus maps a service error to an HTTP status and response message.
func errorStatus(err error) (int, string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Reason
	case errors.Is(err, service.ErrDuplicateEmail):
		return http.StatusBadRequest, "User with this email already exists."
	case errors.Is(err, service.ErrDuplicateUsername):
		return http.StatusBadRequest, "Username is already taken."
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials."
	case errors.Is(err, service.ErrTaskNotFound):
		return http.StatusNotFound, "Task not found."
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// respondError writes the mapped error response and logs it; 5xx at error
// level, everything else as routine request noise.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code, msg := errorStatus(err)
	if h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if code >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(code, gin.H{"message": msg})
}
