package media

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/memstore"
)

// Service owns the media library collection.
type Service struct {
	store *memstore.Store[models.MediaItem]
}

// NewService seeds a few library entries so the admin grid renders.
func NewService() *Service {
	s := &Service{store: memstore.New(func(m models.MediaItem) string { return m.ID })}
	now := time.Now()
	s.store.Seed([]models.MediaItem{
		{
			ID: uuid.NewString(), Title: "Head office exterior",
			URL: "/static/media/head-office.jpg", Type: models.MediaImage,
			FileSize: 482_133, Dimensions: &models.Dimensions{Width: 1920, Height: 1080},
			UploadedAt: now.Add(-72 * time.Hour), UploadedBy: "admin",
		},
		{
			ID: uuid.NewString(), Title: "Q2 market review",
			Description: "Quarterly review deck for client briefings",
			URL:         "/static/media/q2-market-review.pdf", Type: models.MediaDocument,
			FileSize:   1_204_776,
			UploadedAt: now.Add(-48 * time.Hour), UploadedBy: "admin",
		},
		{
			ID: uuid.NewString(), Title: "Brand intro video",
			URL: "/static/media/brand-intro.mp4", Type: models.MediaVideo,
			FileSize: 22_410_058, Dimensions: &models.Dimensions{Width: 1280, Height: 720},
			UploadedAt: now.Add(-24 * time.Hour), UploadedBy: "admin",
		},
	})
	return s
}

// List returns items newest-uploaded first, optionally filtered by type.
func (s *Service) List(typ models.MediaType) []models.MediaItem {
	var items []models.MediaItem
	if typ == "" {
		items = s.store.All()
	} else {
		items = s.store.Find(func(m models.MediaItem) bool { return m.Type == typ })
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UploadedAt.After(items[j].UploadedAt) })
	return items
}

// Search matches the query case-insensitively against title and
// description, newest first.
func (s *Service) Search(query string) []models.MediaItem {
	q := strings.ToLower(query)
	items := s.store.Find(func(m models.MediaItem) bool {
		return strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Description), q)
	})
	sort.Slice(items, func(i, j int) bool { return items[i].UploadedAt.After(items[j].UploadedAt) })
	return items
}

// GetByID returns nil when the item is absent.
func (s *Service) GetByID(id string) *models.MediaItem {
	m, ok := s.store.Get(id)
	if !ok {
		return nil
	}
	return &m
}

// Create registers an asset; UploadedAt is stamped here.
func (s *Service) Create(dto *CreateMediaDTO, uploadedBy string) models.MediaItem {
	m := models.MediaItem{
		ID:          uuid.NewString(),
		Title:       dto.Title,
		Description: dto.Description,
		URL:         dto.URL,
		Type:        dto.Type,
		FileSize:    dto.FileSize,
		Dimensions:  dto.Dimensions,
		UploadedAt:  time.Now(),
		UploadedBy:  uploadedBy,
	}
	s.store.Insert(m)
	return m
}

// Update merges the mutable fields. URL and type stay as created. Returns
// nil when the item is absent.
func (s *Service) Update(id string, dto *UpdateMediaDTO) *models.MediaItem {
	m, ok := s.store.Update(id, func(m *models.MediaItem) {
		if dto.Title != nil {
			m.Title = *dto.Title
		}
		if dto.Description != nil {
			m.Description = *dto.Description
		}
		if dto.Dimensions != nil {
			m.Dimensions = dto.Dimensions
		}
	})
	if !ok {
		return nil
	}
	return &m
}

// Delete removes the record permanently; there is no soft delete.
func (s *Service) Delete(id string) bool {
	return s.store.Delete(id)
}

// Count reports the library size for dashboard stats.
func (s *Service) Count() int { return s.store.Len() }
