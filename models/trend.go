package models

import (
	"time"

	"github.com/google/uuid"
)

// Trend is a discovered viral video used as a creation template.
// Rows are unique on (platform, source_url).
type Trend struct {
	ID              uuid.UUID `json:"id,omitempty"`
	Platform        string    `json:"platform"`
	SourceURL       string    `json:"source_url"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	ViewCount       int64     `json:"view_count"`
	LikeCount       int64     `json:"like_count"`
	CommentCount    int64     `json:"comment_count"`
	EngagementScore float64   `json:"engagement_score"`
	ThumbnailURL    *string   `json:"thumbnail_url,omitempty"` // Use a pointer for nullable TEXT fields
	BrandNotes      *string   `json:"brand_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}
