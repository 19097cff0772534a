package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clarkpowers2/crypto2bank-backend/internal/application/payoutservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/server/websocket"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/currency"
)

type PayoutHandler struct {
	payoutService payoutservice.IPayoutService
	hub           *websocket.Hub
}

func NewPayoutHandler(payoutService payoutservice.IPayoutService, hub *websocket.Hub) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
		hub:           hub,
	}
}

type createPayoutRequest struct {
	ConversionID  string `json:"conversionId"`
	BankAccountID string `json:"bankAccountId"`
}

func (h *PayoutHandler) CreatePayout(c *gin.Context) {
	var req createPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err))
		return
	}

	payout, err := h.payoutService.Create(c.Request.Context(), req.ConversionID, req.BankAccountID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastEvent("payout_initiated", "payout", payout.ID, string(payout.Status))

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"payout": gin.H{
			"id":          payout.ID,
			"status":      payout.Status,
			"amount_fiat": currency.CentsToDollars(payout.AmountFiatCents),
			"external_id": payout.ExternalID,
			"provider":    payout.Provider,
		},
	})
}
