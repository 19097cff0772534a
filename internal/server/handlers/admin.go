package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clarkpowers2/crypto2bank-backend/internal/application/ledgerservice"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/currency"
)

type AdminHandler struct {
	ledgerService ledgerservice.ILedgerService
}

func NewAdminHandler(ledgerService ledgerservice.ILedgerService) *AdminHandler {
	return &AdminHandler{
		ledgerService: ledgerService,
	}
}

func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.ledgerService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"summary": gin.H{
			"total_gross":      currency.CentsToDollars(summary.TotalGrossCents),
			"total_fees":       currency.CentsToDollars(summary.TotalFeeCents),
			"total_net":        currency.CentsToDollars(summary.TotalNetCents),
			"conversion_count": summary.ConversionCount,
			"payout_count":     summary.PayoutCount,
		},
	})
}

func (h *AdminHandler) Activity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	feed, err := h.ledgerService.GetActivity(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"deposits":    feed.Deposits,
		"conversions": feed.Conversions,
		"payouts":     feed.Payouts,
	})
}
