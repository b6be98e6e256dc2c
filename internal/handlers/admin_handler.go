package handlers

import (
	"net/http"

	"takaearn_backend/internal/middleware"
	"takaearn_backend/internal/services"
	"takaearn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - ревью сабмишенов и заявок на вывод.
type AdminHandler struct {
	*BaseHandler
	reviewService services.ReviewService
	walletService services.WalletService
}

func NewAdminHandler(base *BaseHandler, reviewService services.ReviewService, walletService services.WalletService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		reviewService: reviewService,
		walletService: walletService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/submissions", h.ListSubmissions)
		admin.POST("/submissions/:id/resolve", h.ResolveSubmission)
		admin.GET("/withdrawals", h.ListWithdrawals)
		admin.POST("/withdrawals/:id/resolve", h.ResolveWithdrawal)
	}
}

// ListSubmissions godoc
// @Summary Сабмишены на ревью (фильтр по статусу)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Статус сабмишена"
// @Success 200 {array} dto.SubmissionResponse
// @Router /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	db := h.GetDB(c)

	submissions, err := h.reviewService.ListSubmissions(db, c.Query("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// ResolveSubmission godoc
// @Summary Решение по сабмишену: reject, receive или approve
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param request body dto.ReviewDecision true "Решение"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 409 {object} apperrors.AppError
// @Router /admin/submissions/{id}/resolve [post]
func (h *AdminHandler) ResolveSubmission(c *gin.Context) {
	var decision dto.ReviewDecision
	if !h.BindAndValidate_JSON(c, &decision) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.reviewService.Resolve(db, c.Param("id"), &decision)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	db := h.GetDB(c)

	withdrawals, err := h.walletService.ListWithdrawals(db, c.Query("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawals)
}

// ResolveWithdrawal godoc
// @Summary Решение по заявке на вывод: reject или approve
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body dto.WithdrawalDecision true "Решение"
// @Success 200 {object} dto.TransactionResponse
// @Failure 409 {object} apperrors.AppError
// @Router /admin/withdrawals/{id}/resolve [post]
func (h *AdminHandler) ResolveWithdrawal(c *gin.Context) {
	var decision dto.WithdrawalDecision
	if !h.BindAndValidate_JSON(c, &decision) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.walletService.ResolveWithdrawal(db, c.Param("id"), &decision)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
