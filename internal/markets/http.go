package markets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
)

// HTTPClient fetches the feeds from a remote provider that speaks the same
// envelope contract. Transport or decode failures surface as failure
// envelopes, never as panics or partial data.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client against the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) MarketDataPoints(ctx context.Context) Envelope[[]models.MarketDataPoint] {
	return fetch[[]models.MarketDataPoint](ctx, c, "/market-data")
}

func (c *HTTPClient) EconomicIndicators(ctx context.Context) Envelope[[]models.EconomicIndicator] {
	return fetch[[]models.EconomicIndicator](ctx, c, "/economic-indicators")
}

func (c *HTTPClient) MarketIndexHistory(ctx context.Context) Envelope[[]models.IndexPoint] {
	return fetch[[]models.IndexPoint](ctx, c, "/index-history")
}

func fetch[T any](ctx context.Context, c *HTTPClient, path string) Envelope[T] {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return Fail[T](err.Error())
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return Fail[T](err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Fail[T](fmt.Sprintf("provider returned HTTP %d", resp.StatusCode))
	}

	var env Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Fail[T](fmt.Sprintf("decode provider response: %v", err))
	}
	if !env.Success && env.Error == "" {
		env.Error = "provider reported failure without detail"
	}
	return env
}

var _ Client = (*HTTPClient)(nil)
