package dashboard

import (
	"time"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
)

// Stats is the fixed-shape headline block of the dashboard. The counts are
// derived from the repositories; revenue and visitor figures are the
// simulated values the site launched with.
type Stats struct {
	TotalVisitors       int     `json:"totalVisitors"`
	ActiveSessions      int     `json:"activeSessions"`
	TotalRevenue        float64 `json:"totalRevenue"`
	MonthlyGrowth       float64 `json:"monthlyGrowth"`
	MediaItems          int     `json:"mediaItems"`
	ActiveJobs          int     `json:"activeJobs"`
	PendingApplications int     `json:"pendingApplications"`
}

// Snapshot is one fully-resolved composition of dashboard data. It is only
// handed to callers once every source has resolved; a failed source means
// no snapshot at all.
type Snapshot struct {
	Stats               Stats                      `json:"stats"`
	RecentActivities    []models.ActivityLog       `json:"recentActivities"`
	RecentNotifications []models.Notification      `json:"recentNotifications"`
	MarketData          []models.MarketDataPoint   `json:"marketData"`
	EconomicIndicators  []models.EconomicIndicator `json:"economicIndicators"`
	MarketIndexHistory  []models.IndexPoint        `json:"marketIndexHistory"`
	LoadedAt            time.Time                  `json:"loadedAt"`
}
