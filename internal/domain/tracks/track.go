package tracks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Track struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description,omitempty"`
	Published   bool           `gorm:"column:published;not null;default:false;index" json:"published"`
	Metadata    datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;index" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updatedAt"`
}

func (Track) TableName() string { return "track" }

func (t *Track) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TrackItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TrackID uuid.UUID `gorm:"type:uuid;not null;index:idx_track_item_position,priority:1" json:"trackId"`
	Track   *Track    `gorm:"constraint:OnDelete:CASCADE;foreignKey:TrackID;references:ID" json:"-"`
	Type    ItemType  `gorm:"column:type;type:varchar(16);not null" json:"type"`
	ItemID  uuid.UUID `gorm:"type:uuid;column:item_id;not null;index" json:"itemId"`
	// "order" is reserved in SQL, so the column is named position.
	Order     int       `gorm:"column:position;not null;index:idx_track_item_position,priority:2" json:"order"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (TrackItem) TableName() string { return "track_item" }

func (i *TrackItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (i *TrackItem) Ref() ItemRef {
	return ItemRef{Type: i.Type, ID: i.ItemID}
}
