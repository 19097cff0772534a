package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

// errorCode maps the domain error taxonomy to the wire envelope. Anything
// outside the taxonomy is a storage failure and stays opaque to the caller.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedAsset):
		return http.StatusBadRequest, "unsupported_asset"
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, domain.ErrDepositNotFound):
		return http.StatusNotFound, "deposit_not_found"
	case errors.Is(err, domain.ErrConversionNotFound):
		return http.StatusNotFound, "conversion_not_found"
	case errors.Is(err, domain.ErrBankAccountNotFound):
		return http.StatusNotFound, "bank_account_not_found"
	case errors.Is(err, domain.ErrDepositNotConfirmable):
		return http.StatusConflict, "deposit_not_confirmable"
	case errors.Is(err, domain.ErrDepositNotConvertible):
		return http.StatusConflict, "deposit_not_convertible"
	case errors.Is(err, domain.ErrRateUnavailable):
		return http.StatusBadGateway, "rate_unavailable"
	case errors.Is(err, domain.ErrProvider):
		return http.StatusBadGateway, "provider_error"
	default:
		return http.StatusInternalServerError, "db_error"
	}
}

func respondError(c *gin.Context, err error) {
	status, code := errorCode(err)
	c.JSON(status, gin.H{"ok": false, "error": code})
}
