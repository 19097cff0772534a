package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/clarkpowers2/crypto2bank-backend/internal/application/bankaccountservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/conversionservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/depositservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/ledgerservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/payoutservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/quoteservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/database"
	"github.com/clarkpowers2/crypto2bank-backend/internal/server/websocket"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/config"
)

type Handlers struct {
	DepositSvc     depositservice.IDepositService
	ConversionSvc  conversionservice.IConversionService
	PayoutSvc      payoutservice.IPayoutService
	QuoteSvc       quoteservice.IQuoteService
	BankAccountSvc bankaccountservice.IBankAccountService
	LedgerSvc      ledgerservice.ILedgerService
	DB             *database.DBManager
	Hub            *websocket.Hub
	Logger         zerolog.Logger
	Config         *config.Config
}

func New(
	depositSvc depositservice.IDepositService,
	conversionSvc conversionservice.IConversionService,
	payoutSvc payoutservice.IPayoutService,
	quoteSvc quoteservice.IQuoteService,
	bankAccountSvc bankaccountservice.IBankAccountService,
	ledgerSvc ledgerservice.ILedgerService,
	db *database.DBManager,
	hub *websocket.Hub,
	logger zerolog.Logger,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		DepositSvc:     depositSvc,
		ConversionSvc:  conversionSvc,
		PayoutSvc:      payoutSvc,
		QuoteSvc:       quoteSvc,
		BankAccountSvc: bankAccountSvc,
		LedgerSvc:      ledgerSvc,
		DB:             db,
		Hub:            hub,
		Logger:         logger,
		Config:         cfg,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	depositHandler := NewDepositHandler(h.DepositSvc, h.Hub)
	conversionHandler := NewConversionHandler(h.ConversionSvc, h.Hub)
	payoutHandler := NewPayoutHandler(h.PayoutSvc, h.Hub)
	quoteHandler := NewQuoteHandler(h.QuoteSvc)
	bankHandler := NewBankAccountHandler(h.BankAccountSvc)
	adminHandler := NewAdminHandler(h.LedgerSvc)
	wsHandler := NewWebSocketHandler(h.Hub, h.Config.WebSocket)
	healthHandler := NewHealthHandler(h.DB)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	router.GET("/ws/activity", wsHandler.HandleConnection)

	api := router.Group("/api")
	{
		api.POST("/deposits/create", depositHandler.CreateDeposit)
		api.POST("/deposits/:id/confirm", depositHandler.ConfirmDeposit)
		api.POST("/convert", conversionHandler.Convert)
		api.POST("/quotes", quoteHandler.CreateQuote)
		api.POST("/banks", bankHandler.AddBankAccount)
		api.GET("/banks", bankHandler.ListBankAccounts)
		api.POST("/payouts", payoutHandler.CreatePayout)

		admin := api.Group("/admin")
		{
			admin.GET("/summary", adminHandler.Summary)
			admin.GET("/activity", adminHandler.Activity)
		}
	}
}
