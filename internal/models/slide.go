package models

// SlideContent is one slide of the homepage hero carousel.
// Order defines display sequence; values need not be contiguous.
type SlideContent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	CTAText     string `json:"ctaText,omitempty"`
	CTAURL      string `json:"ctaUrl,omitempty"`
	Order       int    `json:"order"`
}
