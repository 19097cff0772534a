package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/clarkpowers2/crypto2bank-backend/internal/application/depositservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/server/websocket"
)

type DepositHandler struct {
	depositService depositservice.IDepositService
	hub            *websocket.Hub
}

func NewDepositHandler(depositService depositservice.IDepositService, hub *websocket.Hub) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
		hub:            hub,
	}
}

type createDepositRequest struct {
	Asset        string          `json:"asset"`
	AmountCrypto decimal.Decimal `json:"amountCrypto"`
	UserID       string          `json:"userId"`
}

func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	var req createDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err))
		return
	}

	deposit, err := h.depositService.Create(c.Request.Context(), depositservice.CreateDepositParams{
		Asset:        req.Asset,
		AmountCrypto: req.AmountCrypto,
		UserID:       req.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastEvent("deposit_created", "deposit", deposit.ID, string(deposit.Status))

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"hosted_url": deposit.HostedURL,
		"deposit_id": deposit.ID,
		"charge_id":  deposit.ID,
	})
}

func (h *DepositHandler) ConfirmDeposit(c *gin.Context) {
	deposit, err := h.depositService.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastEvent("deposit_confirmed", "deposit", deposit.ID, string(deposit.Status))

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"deposit": deposit,
	})
}
