package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/clarkpowers2/crypto2bank-backend/internal/application/quoteservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/currency"
)

type QuoteHandler struct {
	quoteService quoteservice.IQuoteService
}

func NewQuoteHandler(quoteService quoteservice.IQuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

type quoteRequest struct {
	Asset        string          `json:"asset"`
	AmountCrypto decimal.Decimal `json:"amountCrypto"`
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err))
		return
	}

	quote, err := h.quoteService.Quote(c.Request.Context(), req.Asset, req.AmountCrypto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"quote": gin.H{
			"asset":             quote.Asset,
			"amount_crypto":     quote.AmountCrypto,
			"price_usd":         quote.PriceUSD,
			"fiat_currency":     quote.FiatCurrency,
			"amount_fiat_gross": currency.CentsToDollars(quote.GrossCents),
			"fee_amount":        currency.CentsToDollars(quote.FeeCents),
			"amount_fiat_net":   currency.CentsToDollars(quote.NetCents),
			"provider":          quote.Provider,
		},
	})
}
