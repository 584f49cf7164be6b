package activity

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/memstore"
)

// Service owns the append-only activity log. Reads never mutate entries.
type Service struct {
	store *memstore.Store[models.ActivityLog]
}

// NewService creates an empty log.
func NewService() *Service {
	return &Service{store: memstore.New(func(a models.ActivityLog) string { return a.ID })}
}

// Record appends one audit entry.
func (s *Service) Record(userID, action, details string) models.ActivityLog {
	entry := models.ActivityLog{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		UserID:    userID,
		Action:    action,
		Details:   details,
	}
	s.store.Insert(entry)
	return entry
}

// Recent returns up to limit entries, newest first. limit <= 0 means all.
func (s *Service) Recent(limit int) []models.ActivityLog {
	items := s.store.All()
	sort.Slice(items, func(i, j int) bool { return items[i].Timestamp.After(items[j].Timestamp) })
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
