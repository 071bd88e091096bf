package realtime

import (
	"time"

	"github.com/google/uuid"
)

const EventTrackProgressChanged = "track.progress.changed"

// ProgressEvent announces that a user's completion of one track item changed.
type ProgressEvent struct {
	Type        string     `json:"type"`
	UserID      int64      `json:"userId"`
	TrackID     uuid.UUID  `json:"trackId"`
	TrackItemID uuid.UUID  `json:"trackItemId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	OccurredAt  time.Time  `json:"occurredAt"`
	RequestID   string     `json:"requestId,omitempty"`
}
