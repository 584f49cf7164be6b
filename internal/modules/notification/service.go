package notification

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/memstore"
)

// Service owns per-user admin notifications. Records are mutated only via
// the mark-as-read operations and removed via Delete.
type Service struct {
	store       *memstore.Store[models.Notification]
	adminUserID string
}

// NewService seeds a welcome notification for the configured admin.
func NewService(adminUserID string) *Service {
	s := &Service{
		store:       memstore.New(func(n models.Notification) string { return n.ID }),
		adminUserID: adminUserID,
	}
	s.store.Seed([]models.Notification{{
		ID:        uuid.NewString(),
		UserID:    adminUserID,
		Title:     "Welcome back",
		Message:   "The content dashboard is ready.",
		Type:      models.NotifyInfo,
		CreatedAt: time.Now(),
	}})
	return s
}

// Create adds a notification for a specific user.
func (s *Service) Create(userID, title, message string, typ models.NotificationType) models.Notification {
	n := models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	s.store.Insert(n)
	return n
}

// Broadcast notifies the admin account. Site events (new applications,
// contact submissions) land here.
func (s *Service) Broadcast(title, message string, typ models.NotificationType) models.Notification {
	return s.Create(s.adminUserID, title, message, typ)
}

// Recent returns up to limit notifications belonging to userID, newest
// first. Records of other users are never returned.
func (s *Service) Recent(userID string, limit int) []models.Notification {
	items := s.store.Find(func(n models.Notification) bool { return n.UserID == userID })
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// UnreadCount reports how many notifications for userID are unread.
func (s *Service) UnreadCount(userID string) int {
	return len(s.store.Find(func(n models.Notification) bool {
		return n.UserID == userID && !n.IsRead
	}))
}

// MarkRead flips one notification; nil when absent.
func (s *Service) MarkRead(id string) *models.Notification {
	n, ok := s.store.Update(id, func(n *models.Notification) { n.IsRead = true })
	if !ok {
		return nil
	}
	return &n
}

// MarkAllRead flips every unread notification of userID in one atomic
// pass, returning the number of records touched.
func (s *Service) MarkAllRead(userID string) int {
	touched := 0
	s.store.Mutate(func(items []models.Notification) []models.Notification {
		for i := range items {
			if items[i].UserID == userID && !items[i].IsRead {
				items[i].IsRead = true
				touched++
			}
		}
		return items
	})
	return touched
}

// Delete removes a notification; false when already absent.
func (s *Service) Delete(id string) bool {
	return s.store.Delete(id)
}
