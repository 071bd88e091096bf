package tracks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/amcdental/dentalhub-backend/internal/domain/content"
)

// ItemView is a track item with its resolved content and the viewer's state.
// Details is nil when the referenced content row could not be resolved.
type ItemView struct {
	ID        uuid.UUID        `json:"id"`
	TrackID   uuid.UUID        `json:"trackId"`
	Type      ItemType         `json:"type"`
	ItemID    uuid.UUID        `json:"itemId"`
	Order     int              `json:"order"`
	Details   *content.Summary `json:"details"`
	Completed bool             `json:"completed"`
	Unlocked  *bool            `json:"unlocked,omitempty"`
}

type ProgressSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// View is the assembled track aggregate handed to the transport layer.
type View struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Published   bool             `json:"published"`
	Metadata    datatypes.JSON   `json:"metadata,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Items       []*ItemView      `json:"items"`
	Progress    *ProgressSummary `json:"progress,omitempty"`
}

func NewItemView(it *TrackItem) *ItemView {
	return &ItemView{
		ID:      it.ID,
		TrackID: it.TrackID,
		Type:    it.Type,
		ItemID:  it.ItemID,
		Order:   it.Order,
	}
}

func NewView(t *Track) *View {
	return &View{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Published:   t.Published,
		Metadata:    t.Metadata,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Items:       []*ItemView{},
	}
}

// Summarize counts completed items. Percent rounds down.
func (v *View) Summarize() *ProgressSummary {
	out := &ProgressSummary{Total: len(v.Items)}
	for _, it := range v.Items {
		if it != nil && it.Completed {
			out.Completed++
		}
	}
	if out.Total > 0 {
		out.Percent = out.Completed * 100 / out.Total
	}
	return out
}
