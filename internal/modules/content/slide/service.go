package slide

import (
	"sort"

	"github.com/google/uuid"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/memstore"
)

// Service owns the hero slide collection.
type Service struct {
	store *memstore.Store[models.SlideContent]
}

// NewService seeds the carousel the site ships with.
func NewService() *Service {
	s := &Service{store: memstore.New(func(sl models.SlideContent) string { return sl.ID })}
	s.store.Seed([]models.SlideContent{
		{
			ID:          uuid.NewString(),
			Title:       "Grow Your Wealth With Confidence",
			Description: "Pension funds, mutual funds and advisory built for long-term investors.",
			ImageURL:    "/static/slides/hero-growth.jpg",
			CTAText:     "Start Investing",
			CTAURL:      "/products",
			Order:       1,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Plan Your Retirement Today",
			Description: "Tier 2 and Tier 3 pension schemes managed by licensed trustees.",
			ImageURL:    "/static/slides/hero-retirement.jpg",
			CTAText:     "See Pension Plans",
			CTAURL:      "/products/pensions",
			Order:       2,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Markets Insight, Every Morning",
			Description: "Daily research notes on the GSE and fixed income markets.",
			ImageURL:    "/static/slides/hero-research.jpg",
			CTAText:     "Read Research",
			CTAURL:      "/insights",
			Order:       3,
		},
	})
	return s
}

// List returns all slides by order ascending. The sort is stable so equal
// order values keep their insertion sequence.
func (s *Service) List() []models.SlideContent {
	items := s.store.All()
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items
}

// GetByID returns nil when the slide is absent.
func (s *Service) GetByID(id string) *models.SlideContent {
	sl, ok := s.store.Get(id)
	if !ok {
		return nil
	}
	return &sl
}

// Create appends a slide. A missing order places it after the current tail.
func (s *Service) Create(dto *CreateSlideDTO) models.SlideContent {
	order := s.nextOrder()
	if dto.Order != nil {
		order = *dto.Order
	}
	sl := models.SlideContent{
		ID:          uuid.NewString(),
		Title:       dto.Title,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
		CTAText:     dto.CTAText,
		CTAURL:      dto.CTAURL,
		Order:       order,
	}
	s.store.Insert(sl)
	return sl
}

// Update merges the partial DTO into the slide. Returns nil when absent.
func (s *Service) Update(id string, dto *UpdateSlideDTO) *models.SlideContent {
	sl, ok := s.store.Update(id, func(sl *models.SlideContent) {
		if dto.Title != nil {
			sl.Title = *dto.Title
		}
		if dto.Description != nil {
			sl.Description = *dto.Description
		}
		if dto.ImageURL != nil {
			sl.ImageURL = *dto.ImageURL
		}
		if dto.CTAText != nil {
			sl.CTAText = *dto.CTAText
		}
		if dto.CTAURL != nil {
			sl.CTAURL = *dto.CTAURL
		}
		if dto.Order != nil {
			sl.Order = *dto.Order
		}
	})
	if !ok {
		return nil
	}
	return &sl
}

// Delete removes a slide; false when already absent.
func (s *Service) Delete(id string) bool {
	return s.store.Delete(id)
}

// Reorder rewrites order = position+1 for each listed id in one atomic
// step, so readers never see a half-applied sequence. Unknown ids are
// ignored; slides not listed keep their current order.
func (s *Service) Reorder(ids []string) []models.SlideContent {
	orderByID := make(map[string]int, len(ids))
	for pos, id := range ids {
		orderByID[id] = pos + 1
	}
	s.store.Mutate(func(items []models.SlideContent) []models.SlideContent {
		for i := range items {
			if order, ok := orderByID[items[i].ID]; ok {
				items[i].Order = order
			}
		}
		return items
	})
	return s.List()
}

func (s *Service) nextOrder() int {
	max := 0
	for _, sl := range s.store.All() {
		if sl.Order > max {
			max = sl.Order
		}
	}
	return max + 1
}
