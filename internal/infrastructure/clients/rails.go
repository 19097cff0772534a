package clients

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/config"
)

// TransferRequest is a banking-rails transfer of whole USD cents.
type TransferRequest struct {
	AmountCents   int64
	Currency      string
	SourceID      string
	DestinationID string
	Description   string
}

type TransferResult struct {
	ExternalID string
	Provider   string
	Raw        json.RawMessage
}

type IRailsClient interface {
	CreateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
}

// MoovClient dispatches ACH transfers through the Moov API. Any failure is
// returned as ErrProvider; callers must not pretend the transfer happened.
type MoovClient struct {
	baseURL    string
	accountID  string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewMoovClient(cfg *config.RailsConfig, logger zerolog.Logger) *MoovClient {
	return &MoovClient{
		baseURL:   cfg.BaseURL,
		accountID: cfg.AccountID,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger: logger.With().Str("component", "moov_client").Logger(),
	}
}

func (c *MoovClient) CreateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	body := map[string]any{
		"amount": map[string]any{
			"currency": req.Currency,
			"value":    req.AmountCents,
		},
		"source":      map[string]any{"paymentMethodID": req.SourceID},
		"destination": map[string]any{"paymentMethodID": req.DestinationID},
		"description": req.Description,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transfers", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	httpReq.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.accountID+":")))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Msg("Rails transfer request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error().Int("status_code", resp.StatusCode).Str("body", string(raw)).Msg("Rails transfer rejected")
		return nil, fmt.Errorf("%w: status %d", domain.ErrProvider, resp.StatusCode)
	}

	var transfer struct {
		TransferID string `json:"transferID"`
	}
	if err := json.Unmarshal(raw, &transfer); err != nil || transfer.TransferID == "" {
		return nil, fmt.Errorf("%w: transfer response has no transferID", domain.ErrProvider)
	}

	return &TransferResult{
		ExternalID: transfer.TransferID,
		Provider:   "moov",
		Raw:        raw,
	}, nil
}

// SimulatedRailsClient fabricates provider references locally. It is the demo
// path; no money moves anywhere.
type SimulatedRailsClient struct {
	logger zerolog.Logger
}

func NewSimulatedRailsClient(logger zerolog.Logger) *SimulatedRailsClient {
	return &SimulatedRailsClient{
		logger: logger.With().Str("component", "simulated_rails_client").Logger(),
	}
}

func (c *SimulatedRailsClient) CreateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	externalID := fmt.Sprintf("moov_transfer_%d", rand.Intn(100000))
	c.logger.Info().
		Str("external_id", externalID).
		Int64("amount_cents", req.AmountCents).
		Msg("Simulated rails transfer created")

	return &TransferResult{
		ExternalID: externalID,
		Provider:   "demo",
	}, nil
}
