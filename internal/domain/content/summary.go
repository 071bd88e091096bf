package content

import "github.com/google/uuid"

// Summary is the lightweight, type-tagged projection of one content row.
type Summary struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Category string    `json:"category,omitempty"`
	FileURL  string    `json:"fileUrl,omitempty"`
	VideoURL string    `json:"videoUrl,omitempty"`
	Duration int       `json:"duration,omitempty"`
}
