package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Summary   string    `gorm:"column:summary;type:text" json:"summary,omitempty"`
	Category  string    `gorm:"column:category;index" json:"category,omitempty"`
	FileURL   string    `gorm:"column:file_url" json:"fileUrl,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Article) TableName() string { return "article" }

func (a *Article) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a *Article) Summarize() *Summary {
	return &Summary{
		ID:       a.ID,
		Type:     "article",
		Title:    a.Title,
		Slug:     a.Slug,
		Summary:  a.Summary,
		Category: a.Category,
		FileURL:  a.FileURL,
	}
}
