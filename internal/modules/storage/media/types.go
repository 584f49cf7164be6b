package media

import "github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"

// CreateMediaDTO registers an uploaded asset. URL and Type are fixed for
// the lifetime of the record.
type CreateMediaDTO struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	URL         string             `json:"url" binding:"required"`
	Type        models.MediaType   `json:"type" binding:"required,oneof=image video document"`
	FileSize    int64              `json:"fileSize" binding:"min=0"`
	Dimensions  *models.Dimensions `json:"dimensions"`
}

// UpdateMediaDTO carries the mutable fields only.
type UpdateMediaDTO struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Dimensions  *models.Dimensions `json:"dimensions"`
}
