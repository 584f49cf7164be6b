package models

import "time"

// MarketDataPoint is a quote for one listed equity. The gorm tags back the
// optional relational market store; in-memory mode ignores them.
type MarketDataPoint struct {
	ID            string    `json:"id"            gorm:"type:char(36);primaryKey"`
	Symbol        string    `json:"symbol"        gorm:"index"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Currency      string    `json:"currency"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EconomicIndicator is a headline macro figure (inflation, policy rate, ...).
type EconomicIndicator struct {
	ID     string  `json:"id"     gorm:"type:char(36);primaryKey"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Period string  `json:"period"`
	Trend  string  `json:"trend"` // up | down | flat
}

// IndexPoint is one day of composite index history.
type IndexPoint struct {
	ID    string  `json:"-"     gorm:"type:char(36);primaryKey"`
	Date  string  `json:"date"  gorm:"index"`
	Value float64 `json:"value"`
}
