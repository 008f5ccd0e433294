package handlers

import (
	"net/http"

	"todolist/internal/models"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// authResponse is the outward user shape; it never carries the hash.
type authResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

type changePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

func newAuthResponse(u *models.User, token string) authResponse {
	return authResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Token:    token,
	}
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Credentials"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgMissingFields})
		return
	}

	u, token, err := h.services.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.respondError(c, "auth_register_failed", err, "username", req.Username)
		return
	}

	c.JSON(http.StatusCreated, newAuthResponse(u, token))
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgMissingFields})
		return
	}

	u, token, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, "auth_login_failed", err, "email", req.Email)
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(u, token))
}

// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/password [put]
// @Security     BearerAuth
func (h *Handler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgMissingFields})
		return
	}

	u := currentUser(c)
	if err := h.services.ChangePassword(c.Request.Context(), u.ID, req.Password); err != nil {
		h.respondError(c, "auth_change_password_failed", err, "user_id", u.ID)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary      Delete own account and all owned tasks
// @Tags         auth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [delete]
// @Security     BearerAuth
func (h *Handler) deleteAccount(c *gin.Context) {
	u := currentUser(c)
	if err := h.services.DeleteAccount(c.Request.Context(), u.ID); err != nil {
		h.respondError(c, "auth_delete_account_failed", err, "user_id", u.ID)
		return
	}

	c.Status(http.StatusNoContent)
}
