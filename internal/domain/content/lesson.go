package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lesson struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	VideoURL    string    `gorm:"column:video_url" json:"videoUrl,omitempty"`
	// Duration in seconds.
	Duration  int       `gorm:"column:duration;not null;default:0" json:"duration"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Lesson) TableName() string { return "lesson" }

func (l *Lesson) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *Lesson) Summarize() *Summary {
	return &Summary{
		ID:       l.ID,
		Type:     "lesson",
		Title:    l.Title,
		Summary:  l.Description,
		VideoURL: l.VideoURL,
		Duration: l.Duration,
	}
}
