package slide

// CreateSlideDTO is the admin payload for a new slide.
type CreateSlideDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	CTAText     string `json:"ctaText"`
	CTAURL      string `json:"ctaUrl"`
	Order       *int   `json:"order"`
}

// UpdateSlideDTO carries partial fields; nil fields are preserved.
type UpdateSlideDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	CTAText     *string `json:"ctaText"`
	CTAURL      *string `json:"ctaUrl"`
	Order       *int    `json:"order"`
}

// ReorderDTO lists slide ids in the desired display order.
type ReorderDTO struct {
	IDs []string `json:"ids" binding:"required"`
}
