package handlers

import (
	"errors"
	"net/http"
	"strings"

	"todolist/internal/models"
	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

const userCtxKey = "user"

// 401 messages; clients should treat all three as "unauthenticated", the
// distinction exists for diagnostics only.
const (
	msgNoToken      = "Not authorized, no token."
	msgTokenFailed  = "Not authorized, token failed."
	msgUserNotFound = "Not authorized, user not found."
)

// requireUser is the gate in front of every protected route. It extracts
// the bearer token, verifies it and resolves it to a live user with a
// single credential-store lookup. The resolved user (hash already
// stripped) is stored in the request context; nothing is cached across
// requests.
func (h *Handler) requireUser(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgNoToken})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgNoToken})
		return
	}

	user, err := h.services.Authenticate(c.Request.Context(), parts[1])
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_rejected", "err", err)
		}
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgUserNotFound})
		case errors.Is(err, service.ErrTokenMalformed),
			errors.Is(err, service.ErrTokenExpired),
			errors.Is(err, service.ErrTokenSignature):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgTokenFailed})
		default:
			// Storage failure while resolving the user, not a bad credential.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgInternalError})
		}
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

// currentUser returns the identity attached by requireUser.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
