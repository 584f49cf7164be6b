package markets

import (
	"context"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"gorm.io/gorm"
)

// DBClient reads the feeds from the relational market store. The schema is
// migrated by internal/database; this client is read-only.
type DBClient struct {
	db *gorm.DB
}

// NewDBClient wraps an open gorm connection.
func NewDBClient(db *gorm.DB) *DBClient { return &DBClient{db: db} }

func (c *DBClient) MarketDataPoints(ctx context.Context) Envelope[[]models.MarketDataPoint] {
	var points []models.MarketDataPoint
	if err := c.db.WithContext(ctx).Order("symbol ASC").Find(&points).Error; err != nil {
		return Fail[[]models.MarketDataPoint](err.Error())
	}
	return Ok(points)
}

func (c *DBClient) EconomicIndicators(ctx context.Context) Envelope[[]models.EconomicIndicator] {
	var indicators []models.EconomicIndicator
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&indicators).Error; err != nil {
		return Fail[[]models.EconomicIndicator](err.Error())
	}
	return Ok(indicators)
}

func (c *DBClient) MarketIndexHistory(ctx context.Context) Envelope[[]models.IndexPoint] {
	var history []models.IndexPoint
	if err := c.db.WithContext(ctx).Order("date ASC").Find(&history).Error; err != nil {
		return Fail[[]models.IndexPoint](err.Error())
	}
	return Ok(history)
}

var _ Client = (*DBClient)(nil)
