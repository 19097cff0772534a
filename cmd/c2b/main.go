package main

import (
	"context"
	"time"

	"github.com/clarkpowers2/crypto2bank-backend/internal/application/bankaccountservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/conversionservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/depositservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/ledgerservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/payoutservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/application/quoteservice"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/clients"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/database"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/bankaccountrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/conversionrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/depositrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/payoutrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/server"
	"github.com/clarkpowers2/crypto2bank-backend/internal/server/handlers"
	"github.com/clarkpowers2/crypto2bank-backend/internal/server/websocket"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/config"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/currency"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log = logger.NewWithConfig(cfg.Logger)

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.ShutDown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureSchema(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to apply database schema")
	}
	cancel()

	depositRepo := depositrepo.New(db, log)
	conversionRepo := conversionrepo.New(db, log)
	payoutRepo := payoutrepo.New(db, log)
	bankAccountRepo := bankaccountrepo.New(db, log)

	rateClient := clients.NewRateAPIClient(&cfg.RateAPI, log)

	var railsClient clients.IRailsClient
	switch cfg.Rails.Mode {
	case "moov":
		railsClient = clients.NewMoovClient(&cfg.Rails, log)
	default:
		railsClient = clients.NewSimulatedRailsClient(log)
	}
	log.Info().Str("mode", cfg.Rails.Mode).Msg("Banking rails configured")

	depositService := depositservice.New(depositRepo, cfg.Payments, log)
	conversionService := conversionservice.New(depositRepo, conversionRepo, rateClient, currency.Standard, log)
	payoutService := payoutservice.New(conversionRepo, bankAccountRepo, payoutRepo, railsClient, log)
	quoteService := quoteservice.New(rateClient, currency.Standard, log)
	bankAccountService := bankaccountservice.New(bankAccountRepo, log)
	ledgerService := ledgerservice.New(depositRepo, conversionRepo, payoutRepo, log)

	hub := websocket.NewHub(log)

	h := handlers.New(
		depositService,
		conversionService,
		payoutService,
		quoteService,
		bankAccountService,
		ledgerService,
		db,
		hub,
		log,
		cfg,
	)

	srv := server.New(cfg, h, log)
	srv.Start()
}
