package models

import (
	"encoding/json"
	"time"
)

// Block kinds recognized by the page builder. Unknown kinds round-trip
// through the generic Raw payload.
const (
	BlockHero  = "hero"
	BlockText  = "text"
	BlockStats = "stats"
	BlockCTA   = "cta"
)

// HeroBlock is a full-width banner section.
type HeroBlock struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// TextBlock carries markdown body copy.
type TextBlock struct {
	Markdown string `json:"markdown"`
}

// StatsBlock renders a row of headline figures.
type StatsBlock struct {
	Items []StatItem `json:"items"`
}

// StatItem is one figure in a StatsBlock.
type StatItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CTABlock is a call-to-action strip.
type CTABlock struct {
	Text      string `json:"text"`
	ButtonURL string `json:"buttonUrl"`
}

// PageBlock is one tagged section of a page document. Exactly one of the
// typed payloads is set for known kinds; anything else keeps its raw JSON.
type PageBlock struct {
	Kind  string          `json:"kind"`
	Hero  *HeroBlock      `json:"hero,omitempty"`
	Text  *TextBlock      `json:"text,omitempty"`
	Stats *StatsBlock     `json:"stats,omitempty"`
	CTA   *CTABlock       `json:"cta,omitempty"`
	Raw   json.RawMessage `json:"raw,omitempty"`
}

type pageBlockWire struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// UnmarshalJSON decodes the wire form {kind, data} into the tagged block.
func (b *PageBlock) UnmarshalJSON(raw []byte) error {
	var w pageBlockWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return err
	}
	b.Kind = w.Kind
	switch w.Kind {
	case BlockHero:
		b.Hero = &HeroBlock{}
		return json.Unmarshal(w.Data, b.Hero)
	case BlockText:
		b.Text = &TextBlock{}
		return json.Unmarshal(w.Data, b.Text)
	case BlockStats:
		b.Stats = &StatsBlock{}
		return json.Unmarshal(w.Data, b.Stats)
	case BlockCTA:
		b.CTA = &CTABlock{}
		return json.Unmarshal(w.Data, b.CTA)
	default:
		b.Raw = append(json.RawMessage(nil), w.Data...)
		return nil
	}
}

// MarshalJSON emits the wire form {kind, data}.
func (b PageBlock) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch b.Kind {
	case BlockHero:
		data = b.Hero
	case BlockText:
		data = b.Text
	case BlockStats:
		data = b.Stats
	case BlockCTA:
		data = b.CTA
	default:
		if b.Raw == nil {
			data = json.RawMessage("null")
		} else {
			data = b.Raw
		}
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(pageBlockWire{Kind: b.Kind, Data: payload})
}

// PageDocument is a marketing page keyed by slug.
type PageDocument struct {
	Slug      string      `json:"slug"`
	Title     string      `json:"title"`
	Blocks    []PageBlock `json:"blocks"`
	UpdatedAt time.Time   `json:"updatedAt"`
	UpdatedBy string      `json:"updatedBy,omitempty"`
}
