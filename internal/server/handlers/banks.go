package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clarkpowers2/crypto2bank-backend/internal/application/bankaccountservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type BankAccountHandler struct {
	bankAccountService bankaccountservice.IBankAccountService
}

func NewBankAccountHandler(bankAccountService bankaccountservice.IBankAccountService) *BankAccountHandler {
	return &BankAccountHandler{
		bankAccountService: bankAccountService,
	}
}

type addBankAccountRequest struct {
	RoutingNumber string `json:"routingNumber"`
	AccountNumber string `json:"accountNumber"`
	UserID        string `json:"userId"`
}

func (h *BankAccountHandler) AddBankAccount(c *gin.Context) {
	var req addBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err))
		return
	}

	account, err := h.bankAccountService.Add(c.Request.Context(), req.UserID, req.RoutingNumber, req.AccountNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":           true,
		"bank_account": account,
	})
}

func (h *BankAccountHandler) ListBankAccounts(c *gin.Context) {
	accounts, err := h.bankAccountService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":            true,
		"bank_accounts": accounts,
	})
}
