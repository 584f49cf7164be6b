// Package markets is the market-data collaborator consumed by the admin
// dashboard. Every call returns an envelope rather than an error: callers
// must check Success before touching Data.
package markets

import (
	"context"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
)

// Envelope wraps a data-access result. Error is only meaningful when
// Success is false.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok builds a success envelope.
func Ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// Fail builds a failure envelope.
func Fail[T any](msg string) Envelope[T] {
	return Envelope[T]{Success: false, Error: msg}
}

// Client provides the three market feeds the dashboard composes.
type Client interface {
	MarketDataPoints(ctx context.Context) Envelope[[]models.MarketDataPoint]
	EconomicIndicators(ctx context.Context) Envelope[[]models.EconomicIndicator]
	MarketIndexHistory(ctx context.Context) Envelope[[]models.IndexPoint]
}
