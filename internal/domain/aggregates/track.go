package aggregates

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
)

var TrackAggregateContract = Contract{
	Name:             "Tracks.TrackAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyTableRepoQueries,
	Notes:            "Owns track rows, their ordered item lists and the per-user progress rows hanging off those items.",
}

// TrackAggregate owns track/item/progress consistency.
//
// Write failures are *aggregates.Error with codes:
// CodeValidation, CodeNotFound, CodeConflict, CodeDependency, CodeInternal.
type TrackAggregate interface {
	Aggregate

	// CreateTrack inserts a track and its items in one transaction.
	CreateTrack(ctx context.Context, in CreateTrackInput) (TrackResult, error)

	// UpdateTrack patches scalar fields and, when ReplaceItems is set, swaps the whole
	// item list. Progress rows of replaced items are removed with them.
	UpdateTrack(ctx context.Context, in UpdateTrackInput) (TrackResult, error)

	// DeleteTrack removes the track, its items and all progress on those items.
	DeleteTrack(ctx context.Context, in DeleteTrackInput) (DeleteTrackResult, error)

	// SetItemCompletion upserts the (user, item) progress row.
	SetItemCompletion(ctx context.Context, in SetItemCompletionInput) (*tracks.Progress, error)
}

// TrackItemInput is one requested slot. A nil Order means "use the array position".
type TrackItemInput struct {
	Type   tracks.ItemType
	ItemID uuid.UUID
	Order  *int
}

type CreateTrackInput struct {
	Title       string
	Description string
	Published   bool
	Metadata    datatypes.JSON
	Items       []TrackItemInput
}

type UpdateTrackInput struct {
	TrackID     uuid.UUID
	Title       *string
	Description *string
	Published   *bool
	Metadata    datatypes.JSON

	ReplaceItems bool
	Items        []TrackItemInput
}

type TrackResult struct {
	Track *tracks.Track
	Items []*tracks.TrackItem
}

type DeleteTrackInput struct {
	TrackID uuid.UUID
}

type DeleteTrackResult struct {
	ItemsDeleted    int64
	ProgressDeleted int64
}

type SetItemCompletionInput struct {
	UserID      int64
	TrackID     uuid.UUID
	TrackItemID uuid.UUID
	Completed   bool
	At          time.Time
}
