package aggregates

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
)

// RequireTitle trims raw and rejects blank titles.
func RequireTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ValidationError("title is required")
	}
	return title, nil
}

// RequireFound converts a missing row into a typed not-found error.
func RequireFound(found bool, what string, id uuid.UUID) error {
	if found {
		return nil
	}
	return NotFoundError(fmt.Sprintf("%s not found: %s", strings.TrimSpace(what), id.String()))
}

// RequireItemInTrack rejects items that are missing or attached to another track.
// Both cases read as not found so callers cannot probe foreign item ids.
func RequireItemInTrack(item *tracks.TrackItem, trackID, itemID uuid.UUID) error {
	if item == nil || item.ID == uuid.Nil || item.TrackID != trackID {
		return NotFoundError(fmt.Sprintf("track item not found: %s", itemID.String()))
	}
	return nil
}

// BuildTrackItems validates inputs and materializes rows for trackID.
// A nil Order takes the array position. Rows come back sorted by order, and
// equal orders keep request order via staggered created_at values.
func BuildTrackItems(trackID uuid.UUID, in []domainagg.TrackItemInput, now time.Time) ([]*tracks.TrackItem, error) {
	out := make([]*tracks.TrackItem, 0, len(in))
	for i, it := range in {
		if !it.Type.Valid() {
			return nil, ValidationError(fmt.Sprintf("items[%d].type must be one of article, lesson, tool", i))
		}
		if it.ItemID == uuid.Nil {
			return nil, ValidationError(fmt.Sprintf("items[%d].itemId is required", i))
		}
		order := i
		if it.Order != nil {
			if *it.Order < 0 {
				return nil, ValidationError(fmt.Sprintf("items[%d].order must be >= 0", i))
			}
			order = *it.Order
		}
		at := now.Add(time.Duration(i) * time.Microsecond)
		out = append(out, &tracks.TrackItem{
			ID:        uuid.New(),
			TrackID:   trackID,
			Type:      it.Type,
			ItemID:    it.ItemID,
			Order:     order,
			CreatedAt: at,
			UpdatedAt: at,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}
