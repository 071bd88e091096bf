package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tool is a downloadable practice resource (checklist, template, calculator sheet).
type Tool struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Category    string    `gorm:"column:category;index" json:"category,omitempty"`
	FileURL     string    `gorm:"column:file_url" json:"fileUrl,omitempty"`
	CreatedAt   time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (Tool) TableName() string { return "tool" }

func (t *Tool) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Tool) Summarize() *Summary {
	return &Summary{
		ID:       t.ID,
		Type:     "tool",
		Title:    t.Title,
		Summary:  t.Description,
		Category: t.Category,
		FileURL:  t.FileURL,
	}
}
