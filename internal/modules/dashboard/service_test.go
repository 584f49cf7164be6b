package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/markets"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/activity"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/careers"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/notification"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/modules/storage/media"
)

// stubMarket lets individual feeds be failed independently.
type stubMarket struct {
	failPoints     bool
	failIndicators bool
	failHistory    bool
}

func (s *stubMarket) MarketDataPoints(ctx context.Context) markets.Envelope[[]models.MarketDataPoint] {
	if s.failPoints {
		return markets.Fail[[]models.MarketDataPoint]("feed unavailable")
	}
	return markets.Ok([]models.MarketDataPoint{{Symbol: "GCB"}})
}

func (s *stubMarket) EconomicIndicators(ctx context.Context) markets.Envelope[[]models.EconomicIndicator] {
	if s.failIndicators {
		return markets.Fail[[]models.EconomicIndicator]("feed unavailable")
	}
	return markets.Ok([]models.EconomicIndicator{{Name: "Inflation"}})
}

func (s *stubMarket) MarketIndexHistory(ctx context.Context) markets.Envelope[[]models.IndexPoint] {
	if s.failHistory {
		return markets.Fail[[]models.IndexPoint]("feed unavailable")
	}
	return markets.Ok([]models.IndexPoint{{}})
}

func newTestService(t *testing.T, market markets.Client) (*Service, *notification.Service) {
	t.Helper()
	notifySvc := notification.NewService("admin-user")
	svc := NewService(market, activity.NewService(), notifySvc, media.NewService(), careers.NewService())
	return svc, notifySvc
}

func TestLoadComposesSnapshot(t *testing.T) {
	svc, _ := newTestService(t, &stubMarket{})

	snap, err := svc.Load(context.Background(), "admin-user")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.MarketData) != 1 || snap.MarketData[0].Symbol != "GCB" {
		t.Errorf("MarketData = %+v", snap.MarketData)
	}
	if len(snap.EconomicIndicators) != 1 {
		t.Errorf("EconomicIndicators = %+v", snap.EconomicIndicators)
	}
	if snap.Stats.MediaItems != 3 {
		t.Errorf("MediaItems = %d, want 3 seeded", snap.Stats.MediaItems)
	}
	if snap.Stats.ActiveJobs != 2 {
		t.Errorf("ActiveJobs = %d, want 2 seeded", snap.Stats.ActiveJobs)
	}
	if snap.Stats.PendingApplications != 0 {
		t.Errorf("PendingApplications = %d", snap.Stats.PendingApplications)
	}
	if snap.LoadedAt.IsZero() {
		t.Error("LoadedAt not stamped")
	}
}

func TestLoadFailsWholeOnAnyFeedFailure(t *testing.T) {
	cases := []struct {
		name   string
		market *stubMarket
		want   string
	}{
		{"points", &stubMarket{failPoints: true}, "market data"},
		{"indicators", &stubMarket{failIndicators: true}, "economic indicators"},
		{"history", &stubMarket{failHistory: true}, "market index history"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t, tc.market)
			snap, err := svc.Load(context.Background(), "admin-user")
			if err == nil {
				t.Fatal("expected error, got snapshot")
			}
			if snap != nil {
				t.Fatalf("partial snapshot returned: %+v", snap)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not name the failed feed %q", err, tc.want)
			}
		})
	}
}

func TestLoadScopesNotificationsToUser(t *testing.T) {
	svc, notifySvc := newTestService(t, &stubMarket{})
	notifySvc.Create("someone-else", "Private", "not for the admin", models.NotifyInfo)
	for i := 0; i < 5; i++ {
		notifySvc.Create("admin-user", "Event", "site event", models.NotifyInfo)
	}

	snap, err := svc.Load(context.Background(), "admin-user")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.RecentNotifications) != recentNotificationLimit {
		t.Fatalf("RecentNotifications = %d, want %d", len(snap.RecentNotifications), recentNotificationLimit)
	}
	for _, n := range snap.RecentNotifications {
		if n.UserID != "admin-user" {
			t.Errorf("notification for %q leaked into admin snapshot", n.UserID)
		}
	}
}

func TestLoadLimitsRecentActivity(t *testing.T) {
	svc, _ := newTestService(t, &stubMarket{})
	activitySvc := svc.activity
	for i := 0; i < 10; i++ {
		activitySvc.Record("admin-user", "slide.update", "hero")
	}

	snap, err := svc.Load(context.Background(), "admin-user")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.RecentActivities) != recentActivityLimit {
		t.Errorf("RecentActivities = %d, want %d", len(snap.RecentActivities), recentActivityLimit)
	}
}
