package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/clarkpowers2/crypto2bank-backend/internal/application/conversionservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/server/websocket"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/currency"
)

type ConversionHandler struct {
	conversionService conversionservice.IConversionService
	hub               *websocket.Hub
}

func NewConversionHandler(conversionService conversionservice.IConversionService, hub *websocket.Hub) *ConversionHandler {
	return &ConversionHandler{
		conversionService: conversionService,
		hub:               hub,
	}
}

type convertRequest struct {
	DepositID string `json:"depositId"`
}

// conversionResponse exposes fiat amounts in dollars; cents are exact so the
// float values carry no rounding error.
type conversionResponse struct {
	ID              string          `json:"id"`
	DepositID       string          `json:"deposit_id"`
	AssetIn         string          `json:"asset_in"`
	AmountInCrypto  decimal.Decimal `json:"amount_in_crypto"`
	FiatCurrency    string          `json:"fiat_currency"`
	AmountFiatGross float64         `json:"amount_fiat_gross"`
	FeePercent      int64           `json:"fee_percent"`
	FeeAmount       float64         `json:"fee_amount"`
	AmountFiatNet   float64         `json:"amount_fiat_net"`
	Provider        string          `json:"provider"`
	Status          string          `json:"status"`
}

func newConversionResponse(conversion *domain.Conversion) conversionResponse {
	return conversionResponse{
		ID:              conversion.ID,
		DepositID:       conversion.DepositID,
		AssetIn:         conversion.AssetIn,
		AmountInCrypto:  conversion.AmountInCrypto,
		FiatCurrency:    conversion.FiatCurrency,
		AmountFiatGross: currency.CentsToDollars(conversion.AmountFiatGrossCents),
		FeePercent:      conversion.FeePercent,
		FeeAmount:       currency.CentsToDollars(conversion.FeeCents),
		AmountFiatNet:   currency.CentsToDollars(conversion.AmountFiatNetCents),
		Provider:        conversion.Provider,
		Status:          string(conversion.Status),
	}
}

func (h *ConversionHandler) Convert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err))
		return
	}

	conversion, err := h.conversionService.Convert(c.Request.Context(), req.DepositID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastEvent("conversion_completed", "conversion", conversion.ID, string(conversion.Status))

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"conversion": newConversionResponse(conversion),
	})
}
