package page

import "github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"

// SavePageDTO is the editor payload for a page document.
type SavePageDTO struct {
	Title  string             `json:"title" binding:"required"`
	Blocks []models.PageBlock `json:"blocks"`
}

// renderedBlock is the public wire form of a block, with HTML attached
// when the block carries markdown.
type renderedBlock struct {
	Kind string      `json:"kind"`
	Data interface{} `json:"data"`
	HTML string      `json:"html,omitempty"`
}

// renderedPage is the public page response with text blocks rendered.
type renderedPage struct {
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Blocks    []renderedBlock `json:"blocks"`
	UpdatedAt string          `json:"updatedAt"`
}

func blockData(b models.PageBlock) interface{} {
	switch b.Kind {
	case models.BlockHero:
		return b.Hero
	case models.BlockText:
		return b.Text
	case models.BlockStats:
		return b.Stats
	case models.BlockCTA:
		return b.CTA
	default:
		return b.Raw
	}
}
