package handlers

import (
	"net/http"

	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Text string `json:"text"`
}

// updateTaskRequest uses pointers so "field absent" and "field set to its
// zero value" stay distinguishable.
type updateTaskRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// @Summary      List own tasks, oldest first
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   models.Task
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	u := currentUser(c)
	tasks, err := h.services.List(c.Request.Context(), u.ID)
	if err != nil {
		h.respondError(c, "tasks_list_failed", err, "user_id", u.ID)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task text"
// @Success      201   {object}  models.Task
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /tasks [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody})
		return
	}

	u := currentUser(c)
	task, err := h.services.Tasks.Create(c.Request.Context(), u.ID, req.Text)
	if err != nil {
		h.respondError(c, "tasks_create_failed", err, "user_id", u.ID)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// @Summary      Update a task
// @Description  Only the owner's task is reachable; a foreign id is 404.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  models.Task
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody})
		return
	}

	u := currentUser(c)
	taskID := c.Param("id")
	task, err := h.services.Tasks.Update(c.Request.Context(), u.ID, taskID, service.TaskUpdate{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		h.respondError(c, "tasks_update_failed", err, "user_id", u.ID, "task_id", taskID)
		return
	}

	c.JSON(http.StatusOK, task)
}

// @Summary      Delete a task
// @Tags         tasks
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	u := currentUser(c)
	taskID := c.Param("id")
	if err := h.services.Tasks.Delete(c.Request.Context(), u.ID, taskID); err != nil {
		h.respondError(c, "tasks_delete_failed", err, "user_id", u.ID, "task_id", taskID)
		return
	}

	c.Status(http.StatusNoContent)
}
