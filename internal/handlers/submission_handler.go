package handlers

import (
	"net/http"

	"takaearn_backend/internal/middleware"
	"takaearn_backend/internal/services"
	"takaearn_backend/internal/services/dto"
	"takaearn_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
}

func NewSubmissionHandler(base *BaseHandler, submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler:       base,
		submissionService: submissionService,
	}
}

func (h *SubmissionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	submissions := rg.Group("/submissions")
	submissions.Use(middleware.AuthMiddleware())
	{
		submissions.POST("", h.Submit)
		submissions.GET("", h.ListMySubmissions)
	}
}

// Submit godoc
// @Summary Отправить выполненное задание на ревью
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitRequest true "Данные сабмишена"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 404 {object} apperrors.AppError
// @Failure 429 {object} apperrors.AppError
// @Router /submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	var req dto.SubmitRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.submissionService.Submit(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SubmissionHandler) ListMySubmissions(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	db := h.GetDB(c)

	submissions, err := h.submissionService.ListByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}
