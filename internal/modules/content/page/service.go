package page

import (
	"bytes"
	"time"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/memstore"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Table,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

// Service owns the marketing page documents, keyed by slug.
type Service struct {
	store *memstore.Store[models.PageDocument]
}

// NewService seeds the pages the marketing site renders at launch.
func NewService() *Service {
	s := &Service{store: memstore.New(func(p models.PageDocument) string { return p.Slug })}
	now := time.Now()
	s.store.Seed([]models.PageDocument{
		{
			Slug:  "about",
			Title: "About Tesah Capital",
			Blocks: []models.PageBlock{
				{Kind: models.BlockHero, Hero: &models.HeroBlock{
					Heading:    "Built on trust, driven by research",
					Subheading: "Licensed fund managers serving individuals and institutions across Ghana.",
				}},
				{Kind: models.BlockText, Text: &models.TextBlock{
					Markdown: "Tesah Capital is an investment management firm headquartered in **Accra**. " +
						"We manage pension schemes, collective investment funds and segregated portfolios.",
				}},
				{Kind: models.BlockStats, Stats: &models.StatsBlock{Items: []models.StatItem{
					{Label: "Assets under management", Value: "GHS 1.2bn"},
					{Label: "Institutional clients", Value: "40+"},
					{Label: "Years of operation", Value: "8"},
				}}},
			},
			UpdatedAt: now,
		},
		{
			Slug:  "products",
			Title: "Our Products",
			Blocks: []models.PageBlock{
				{Kind: models.BlockText, Text: &models.TextBlock{
					Markdown: "From **Tier 2 and Tier 3 pension schemes** to unit trusts and treasury portfolios, " +
						"our products are designed around your horizon and risk appetite.",
				}},
				{Kind: models.BlockCTA, CTA: &models.CTABlock{
					Text: "Talk to an advisor", ButtonURL: "/contact",
				}},
			},
			UpdatedAt: now,
		},
	})
	return s
}

// List returns the page index (slug/title/updatedAt, no blocks).
func (s *Service) List() []models.PageDocument {
	pages := s.store.All()
	out := make([]models.PageDocument, len(pages))
	for i, p := range pages {
		out[i] = models.PageDocument{Slug: p.Slug, Title: p.Title, UpdatedAt: p.UpdatedAt, UpdatedBy: p.UpdatedBy}
	}
	return out
}

// Get returns the full document; nil when the slug is unknown.
func (s *Service) Get(slug string) *models.PageDocument {
	p, ok := s.store.Get(slug)
	if !ok {
		return nil
	}
	return &p
}

// Save upserts the document under slug, stamping the editor identity.
func (s *Service) Save(slug string, doc models.PageDocument, updatedBy string) models.PageDocument {
	doc.Slug = slug
	doc.UpdatedAt = time.Now()
	doc.UpdatedBy = updatedBy
	if !s.store.Replace(slug, doc) {
		s.store.Insert(doc)
	}
	return doc
}

// Delete removes a page; false when the slug is unknown.
func (s *Service) Delete(slug string) bool {
	return s.store.Delete(slug)
}

// RenderMarkdown converts a text block body to HTML.
func RenderMarkdown(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
