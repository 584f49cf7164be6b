package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/markets"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/activity"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/careers"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/notification"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/storage/media"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivityLimit     = 5
	recentNotificationLimit = 3

	// Simulated figures carried over from the launch dataset.
	seededTotalVisitors  = 15234
	seededActiveSessions = 87
	seededTotalRevenue   = 4_820_000.0
	seededMonthlyGrowth  = 4.7
)

// Service composes the admin dashboard snapshot from the repositories and
// the market-data collaborator.
type Service struct {
	market   markets.Client
	activity *activity.Service
	notify   *notification.Service
	media    *media.Service
	careers  *careers.Service
}

// NewService wires the five data sources.
func NewService(market markets.Client, activitySvc *activity.Service, notifySvc *notification.Service,
	mediaSvc *media.Service, careersSvc *careers.Service) *Service {
	return &Service{
		market:   market,
		activity: activitySvc,
		notify:   notifySvc,
		media:    mediaSvc,
		careers:  careersSvc,
	}
}

// Load fetches every source concurrently and composes one snapshot. The
// first failing market envelope cancels the remaining fetches and becomes
// the load error; no partial snapshot is ever returned. Concurrent Load
// calls are independent: the service holds no snapshot state, so the
// caller that applies results last wins.
func (s *Service) Load(ctx context.Context, userID string) (*Snapshot, error) {
	var (
		points       []models.MarketDataPoint
		indicators   []models.EconomicIndicator
		history      []models.IndexPoint
		recentActs   []models.ActivityLog
		recentNotifs []models.Notification
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env := s.market.MarketDataPoints(gctx)
		if !env.Success {
			return fmt.Errorf("market data: %s", env.Error)
		}
		points = env.Data
		return nil
	})
	g.Go(func() error {
		env := s.market.EconomicIndicators(gctx)
		if !env.Success {
			return fmt.Errorf("economic indicators: %s", env.Error)
		}
		indicators = env.Data
		return nil
	})
	g.Go(func() error {
		env := s.market.MarketIndexHistory(gctx)
		if !env.Success {
			return fmt.Errorf("market index history: %s", env.Error)
		}
		history = env.Data
		return nil
	})
	g.Go(func() error {
		recentActs = s.activity.Recent(recentActivityLimit)
		return nil
	})
	g.Go(func() error {
		recentNotifs = s.notify.Recent(userID, recentNotificationLimit)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Snapshot{
		Stats: Stats{
			TotalVisitors:       seededTotalVisitors,
			ActiveSessions:      seededActiveSessions,
			TotalRevenue:        seededTotalRevenue,
			MonthlyGrowth:       seededMonthlyGrowth,
			MediaItems:          s.media.Count(),
			ActiveJobs:          s.careers.ActiveJobCount(),
			PendingApplications: s.careers.PendingApplicationCount(),
		},
		RecentActivities:    recentActs,
		RecentNotifications: recentNotifs,
		MarketData:          points,
		EconomicIndicators:  indicators,
		MarketIndexHistory:  history,
		LoadedAt:            time.Now(),
	}, nil
}

// Refetch is Load with the same userID; it exists so callers read as the
// dashboard contract does.
func (s *Service) Refetch(ctx context.Context, userID string) (*Snapshot, error) {
	return s.Load(ctx, userID)
}
