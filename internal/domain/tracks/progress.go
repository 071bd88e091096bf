package tracks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Progress is one user's completion state for one track item.
type Progress struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      int64      `gorm:"column:user_id;not null;uniqueIndex:idx_track_progress_user_item,priority:1" json:"userId"`
	TrackItemID uuid.UUID  `gorm:"type:uuid;column:track_item_id;not null;uniqueIndex:idx_track_progress_user_item,priority:2;index" json:"trackItemId"`
	TrackItem   *TrackItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:TrackItemID;references:ID" json:"-"`
	Completed   bool       `gorm:"column:completed;not null;default:false" json:"completed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updatedAt"`
}

func (Progress) TableName() string { return "track_progress" }

func (p *Progress) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
