package handlers

import (
	"net/http"

	"takaearn_backend/internal/middleware"
	"takaearn_backend/internal/services"
	"takaearn_backend/internal/services/dto"
	"takaearn_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	*BaseHandler
	walletService services.WalletService
}

func NewWalletHandler(base *BaseHandler, walletService services.WalletService) *WalletHandler {
	return &WalletHandler{
		BaseHandler:   base,
		walletService: walletService,
	}
}

func (h *WalletHandler) RegisterRoutes(rg *gin.RouterGroup) {
	wallet := rg.Group("/wallet")
	wallet.Use(middleware.AuthMiddleware())
	{
		wallet.GET("/balance", h.GetBalance)
		wallet.GET("/transactions", h.ListTransactions)
		wallet.POST("/withdrawals", h.RequestWithdrawal)
	}
}

// GetBalance godoc
// @Summary Баланс текущего пользователя
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BalanceResponse
// @Router /wallet/balance [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	db := h.GetDB(c)

	balance, err := h.walletService.GetBalance(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	db := h.GetDB(c)

	transactions, err := h.walletService.ListTransactions(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// RequestWithdrawal godoc
// @Summary Заявка на вывод средств
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.WithdrawRequest true "Параметры вывода"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} apperrors.AppError
// @Router /wallet/withdrawals [post]
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	var req dto.WithdrawRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.walletService.RequestWithdrawal(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
