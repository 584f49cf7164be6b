package markets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
)

// StaticClient serves a seeded in-process dataset. It is the default
// source and mirrors the simulated feed the site launched with.
type StaticClient struct {
	points     []models.MarketDataPoint
	indicators []models.EconomicIndicator
	history    []models.IndexPoint
}

// NewStaticClient seeds GSE equities, Ghana macro figures and 30 days of
// composite index history.
func NewStaticClient() *StaticClient {
	now := time.Now()
	points := []models.MarketDataPoint{
		{ID: uuid.NewString(), Symbol: "GCB", Name: "GCB Bank PLC", Price: 5.40, Change: 0.05, ChangePercent: 0.93, Currency: "GHS", UpdatedAt: now},
		{ID: uuid.NewString(), Symbol: "MTNGH", Name: "MTN Ghana", Price: 2.10, Change: -0.02, ChangePercent: -0.94, Currency: "GHS", UpdatedAt: now},
		{ID: uuid.NewString(), Symbol: "EGH", Name: "Ecobank Ghana PLC", Price: 7.85, Change: 0.10, ChangePercent: 1.29, Currency: "GHS", UpdatedAt: now},
		{ID: uuid.NewString(), Symbol: "GOIL", Name: "GOIL PLC", Price: 1.55, Change: 0.00, ChangePercent: 0.00, Currency: "GHS", UpdatedAt: now},
		{ID: uuid.NewString(), Symbol: "SCB", Name: "Standard Chartered Bank Ghana", Price: 23.60, Change: -0.15, ChangePercent: -0.63, Currency: "GHS", UpdatedAt: now},
		{ID: uuid.NewString(), Symbol: "TOTAL", Name: "TotalEnergies Marketing Ghana", Price: 12.90, Change: 0.20, ChangePercent: 1.57, Currency: "GHS", UpdatedAt: now},
	}
	indicators := []models.EconomicIndicator{
		{ID: uuid.NewString(), Name: "Inflation Rate", Value: 22.8, Unit: "%", Period: "YoY", Trend: "down"},
		{ID: uuid.NewString(), Name: "Monetary Policy Rate", Value: 27.0, Unit: "%", Period: "current", Trend: "flat"},
		{ID: uuid.NewString(), Name: "91-Day Treasury Bill", Value: 24.5, Unit: "%", Period: "weekly", Trend: "down"},
		{ID: uuid.NewString(), Name: "GHS/USD Exchange Rate", Value: 15.2, Unit: "GHS", Period: "daily", Trend: "up"},
		{ID: uuid.NewString(), Name: "GDP Growth", Value: 3.1, Unit: "%", Period: "quarterly", Trend: "up"},
	}
	history := make([]models.IndexPoint, 0, 30)
	base := 4250.0
	for i := 29; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		// deterministic gentle drift so charts look plausible across restarts
		base += float64((i*7)%11) - 4.6
		history = append(history, models.IndexPoint{
			ID:    uuid.NewString(),
			Date:  day.Format("2006-01-02"),
			Value: roundTo(base, 2),
		})
	}
	return &StaticClient{points: points, indicators: indicators, history: history}
}

func (c *StaticClient) MarketDataPoints(context.Context) Envelope[[]models.MarketDataPoint] {
	return Ok(append([]models.MarketDataPoint(nil), c.points...))
}

func (c *StaticClient) EconomicIndicators(context.Context) Envelope[[]models.EconomicIndicator] {
	return Ok(append([]models.EconomicIndicator(nil), c.indicators...))
}

func (c *StaticClient) MarketIndexHistory(context.Context) Envelope[[]models.IndexPoint] {
	return Ok(append([]models.IndexPoint(nil), c.history...))
}

func roundTo(v float64, places int) float64 {
	shift := 1.0
	for i := 0; i < places; i++ {
		shift *= 10
	}
	return float64(int64(v*shift+0.5)) / shift
}

var _ Client = (*StaticClient)(nil)

// String names the source for logging.
func (c *StaticClient) String() string { return fmt.Sprintf("static(%d symbols)", len(c.points)) }
