package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/memstore"
)

// Service owns the site configuration key/value records.
type Service struct {
	store *memstore.Store[models.Setting]
}

// NewService seeds the settings the site reads at render time.
func NewService() *Service {
	s := &Service{store: memstore.New(func(st models.Setting) string { return st.ID })}
	now := time.Now()
	s.store.Seed([]models.Setting{
		{ID: uuid.NewString(), Category: "general", Key: "site_title", Value: "Tesah Capital", UpdatedAt: now},
		{ID: uuid.NewString(), Category: "general", Key: "contact_email", Value: "info@tesahcapital.com", UpdatedAt: now},
		{ID: uuid.NewString(), Category: "general", Key: "contact_phone", Value: "+233 30 255 0000", UpdatedAt: now},
		{ID: uuid.NewString(), Category: "social", Key: "linkedin_url", Value: "https://www.linkedin.com/company/tesah-capital", UpdatedAt: now},
		{ID: uuid.NewString(), Category: "careers", Key: "applications_open", Value: "true", UpdatedAt: now},
	})
	return s
}

// List returns settings, optionally restricted to one category.
func (s *Service) List(category string) []models.Setting {
	if category == "" {
		return s.store.All()
	}
	return s.store.Find(func(st models.Setting) bool { return st.Category == category })
}

// Get returns the setting for category/key; nil when absent.
func (s *Service) Get(category, key string) *models.Setting {
	matches := s.store.Find(func(st models.Setting) bool {
		return st.Category == category && st.Key == key
	})
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

// Upsert writes a value, creating the record if category/key is new. The
// lookup and the write happen under one lock, so concurrent upserts of the
// same key cannot both insert.
func (s *Service) Upsert(category, key, value string) models.Setting {
	var out models.Setting
	s.store.Mutate(func(items []models.Setting) []models.Setting {
		for i := range items {
			if items[i].Category == category && items[i].Key == key {
				items[i].Value = value
				items[i].UpdatedAt = time.Now()
				out = items[i]
				return items
			}
		}
		out = models.Setting{
			ID:        uuid.NewString(),
			Category:  category,
			Key:       key,
			Value:     value,
			UpdatedAt: time.Now(),
		}
		return append(items, out)
	})
	return out
}

// Delete removes a setting record; false when already absent.
func (s *Service) Delete(id string) bool {
	return s.store.Delete(id)
}
