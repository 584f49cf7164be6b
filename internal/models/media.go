package models

import "time"

// MediaType classifies a media library entry.
type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

// Dimensions are pixel dimensions for image/video items.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MediaItem is a record in the admin media library. URL and Type are
// immutable after creation; delete removes the record permanently.
type MediaItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url"`
	Type        MediaType   `json:"type"`
	FileSize    int64       `json:"fileSize"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
	UploadedAt  time.Time   `json:"uploadedAt"`
	UploadedBy  string      `json:"uploadedBy"`
}
