package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/config"
)

type IRateClient interface {
	GetUSDRate(ctx context.Context, assetSymbol string) (*domain.Rate, error)
}

// coingeckoIDs maps the supported asset symbols to CoinGecko asset ids.
var coingeckoIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"USDT": "tether",
	"USDC": "usd-coin",
}

type RateAPIClient struct {
	baseURL    string
	provider   string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewRateAPIClient(cfg *config.RateAPIConfig, logger zerolog.Logger) *RateAPIClient {
	return &RateAPIClient{
		baseURL:  cfg.BaseURL,
		provider: cfg.Provider,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		logger: logger.With().Str("component", "rate_api_client").Logger(),
	}
}

// GetUSDRate performs one live price lookup. A failed request, a non-200
// response or a missing price all surface as ErrRateUnavailable; nothing is
// cached or retried.
func (c *RateAPIClient) GetUSDRate(ctx context.Context, assetSymbol string) (*domain.Rate, error) {
	symbol := strings.ToUpper(assetSymbol)
	id, ok := coingeckoIDs[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedAsset, symbol)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = "/api/v3/simple/price"
	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", "usd")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("asset", symbol).Msg("Price feed request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status_code", resp.StatusCode).Str("asset", symbol).Msg("Price feed returned non-200 status")
		return nil, fmt.Errorf("%w: status %d", domain.ErrRateUnavailable, resp.StatusCode)
	}

	var payload map[string]map[string]decimal.Decimal
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}

	price, ok := payload[id]["usd"]
	if !ok || price.IsZero() {
		c.logger.Warn().Str("asset", symbol).Msg("Price feed response has no usable price")
		return nil, fmt.Errorf("%w: no price for %s", domain.ErrRateUnavailable, symbol)
	}

	return &domain.Rate{
		Asset:     symbol,
		PriceUSD:  price,
		Provider:  c.provider,
		FetchedAt: time.Now().UTC(),
	}, nil
}
