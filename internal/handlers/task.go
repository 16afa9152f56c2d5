package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sanchalak/sanchalak-api/internal/dto"
	apierrors "github.com/sanchalak/sanchalak-api/internal/errors"
	"github.com/sanchalak/sanchalak-api/internal/middleware"
	"github.com/sanchalak/sanchalak-api/internal/services"
)

// TaskHandler coordinates task store endpoints.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a new task assigned to a team member.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	leader, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description" binding:"required"`
		Deadline    time.Time `json:"deadline" binding:"required"`
		Priority    string    `json:"priority"`
		AssignedTo  uint64    `json:"assignedTo" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "All task fields are required")
		return
	}

	task, err := h.taskService.CreateTask(leader, services.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Deadline:     req.Deadline,
		Priority:     req.Priority,
		AssignedToID: req.AssignedTo,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    task,
	})
}

// DeleteTask permanently removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(actor, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// GetAllTasks lists every task with its assignee resolved.
func (h *TaskHandler) GetAllTasks(c *gin.Context) {
	tasks, err := h.taskService.ListAllTasks()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToTaskViews(tasks),
	})
}

// GetMyTasks lists the tasks assigned to the authenticated member.
func (h *TaskHandler) GetMyTasks(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tasks, err := h.taskService.ListMyTasks(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tasks,
	})
}

// UpdateTaskStatus transitions a task through the status state machine.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	type UpdateStatusRequest struct {
		Status string `json:"status"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Status field is required")
		return
	}

	task, err := h.taskService.UpdateStatus(actor, taskID, req.Status)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    task,
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskFieldsRequired),
		errors.Is(err, services.ErrInvalidAssignee),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrStatusRequired),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotTaskAssignee):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
