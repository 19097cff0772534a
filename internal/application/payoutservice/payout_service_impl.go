package payoutservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/clients"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/bankaccountrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/conversionrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/payoutrepo"
)

type payoutService struct {
	conversionRepo  conversionrepo.IConversionRepository
	bankAccountRepo bankaccountrepo.IBankAccountRepository
	payoutRepo      payoutrepo.IPayoutRepository
	rails           clients.IRailsClient
	logger          zerolog.Logger
}

func New(
	conversionRepo conversionrepo.IConversionRepository,
	bankAccountRepo bankaccountrepo.IBankAccountRepository,
	payoutRepo payoutrepo.IPayoutRepository,
	rails clients.IRailsClient,
	logger zerolog.Logger,
) IPayoutService {
	return &payoutService{
		conversionRepo:  conversionRepo,
		bankAccountRepo: bankAccountRepo,
		payoutRepo:      payoutRepo,
		rails:           rails,
		logger:          logger.With().Str("component", "payout_service").Logger(),
	}
}

// Create initiates a bank payout of a conversion's net amount. The amount is
// never re-derived from the rate. A rails failure fails closed: the payout row
// is recorded as failed and the error is surfaced to the caller.
func (s *payoutService) Create(ctx context.Context, conversionID, bankAccountID string) (*domain.Payout, error) {
	if conversionID == "" || bankAccountID == "" {
		return nil, fmt.Errorf("%w: conversionId and bankAccountId required", domain.ErrInvalidArgument)
	}
	if _, err := uuid.Parse(conversionID); err != nil {
		return nil, domain.ErrConversionNotFound
	}
	if _, err := uuid.Parse(bankAccountID); err != nil {
		return nil, domain.ErrBankAccountNotFound
	}

	conversion, err := s.conversionRepo.GetByID(ctx, conversionID)
	if err != nil {
		return nil, err
	}
	bankAccount, err := s.bankAccountRepo.GetByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}

	payout := &domain.Payout{
		ID:              uuid.NewString(),
		ConversionID:    conversion.ID,
		BankAccountID:   bankAccount.ID,
		UserID:          conversion.UserID,
		FiatCurrency:    conversion.FiatCurrency,
		AmountFiatCents: conversion.AmountFiatNetCents,
		CreatedAt:       time.Now().UTC(),
	}

	result, railsErr := s.rails.CreateTransfer(ctx, clients.TransferRequest{
		AmountCents:   payout.AmountFiatCents,
		Currency:      payout.FiatCurrency,
		SourceID:      conversion.ID,
		DestinationID: bankAccount.ID,
		Description:   "Crypto2Bank Payout",
	})
	if railsErr != nil {
		payout.Status = domain.PayoutStatusFailed
		payout.Provider = "moov"
		if err := s.payoutRepo.Create(ctx, payout); err != nil {
			s.logger.Error().Err(err).Str("payout_id", payout.ID).Msg("Failed to record failed payout")
			return nil, err
		}
		s.logger.Error().Err(railsErr).
			Str("payout_id", payout.ID).
			Str("conversion_id", conversion.ID).
			Msg("Rails transfer failed, payout recorded as failed")
		return nil, railsErr
	}

	payout.Provider = result.Provider
	payout.ExternalID = result.ExternalID
	payout.Status = domain.PayoutStatusProcessing
	payout.Metadata = result.Raw

	if err := s.payoutRepo.Create(ctx, payout); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("payout_id", payout.ID).
		Str("conversion_id", conversion.ID).
		Str("external_id", payout.ExternalID).
		Int64("amount_cents", payout.AmountFiatCents).
		Msg("Payout initiated")
	return payout, nil
}
