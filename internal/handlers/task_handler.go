package handlers

import (
	"net/http"

	"takaearn_backend/internal/middleware"
	"takaearn_backend/internal/services"
	"takaearn_backend/internal/services/dto"
	"takaearn_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	*BaseHandler
	taskService       services.TaskService
	submissionService services.SubmissionService
}

func NewTaskHandler(base *BaseHandler, taskService services.TaskService, submissionService services.SubmissionService) *TaskHandler {
	return &TaskHandler{
		BaseHandler:       base,
		taskService:       taskService,
		submissionService: submissionService,
	}
}

func (h *TaskHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.GET("/:id/cooldown", h.GetCooldown)
	}
}

// ListTasks godoc
// @Summary Список активных заданий
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TaskResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	db := h.GetDB(c)

	tasks, err := h.taskService.ListActive(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	db := h.GetDB(c)

	task, err := h.taskService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetCooldown godoc
// @Summary Остаток кулдауна по заданию для текущего пользователя
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} dto.CooldownResponse
// @Router /tasks/{id}/cooldown [get]
func (h *TaskHandler) GetCooldown(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	db := h.GetDB(c)
	taskID := c.Param("id")

	remaining, err := h.submissionService.RemainingCooldown(db, userID, taskID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CooldownResponse{
		TaskID:           taskID,
		RemainingSeconds: int64(remaining.Seconds()),
	})
}
