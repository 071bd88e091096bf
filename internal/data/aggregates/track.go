package aggregates

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amcdental/dentalhub-backend/internal/data/repos"
	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
)

type TrackAggregateDeps struct {
	Base BaseDeps

	Tracks   repos.TrackRepo
	Items    repos.TrackItemRepo
	Progress repos.TrackProgressRepo
}

type trackAggregate struct {
	deps TrackAggregateDeps
}

func NewTrackAggregate(deps TrackAggregateDeps) domainagg.TrackAggregate {
	deps.Base = deps.Base.withDefaults()
	return &trackAggregate{deps: deps}
}

func (a *trackAggregate) Contract() domainagg.Contract {
	return domainagg.TrackAggregateContract
}

func (a *trackAggregate) configured() bool {
	return a.deps.Tracks != nil && a.deps.Items != nil && a.deps.Progress != nil
}

func (a *trackAggregate) CreateTrack(ctx context.Context, in domainagg.CreateTrackInput) (domainagg.TrackResult, error) {
	const op = "Tracks.Track.Create"
	var out domainagg.TrackResult

	title, err := RequireTitle(in.Title)
	if err != nil {
		return out, MapError(op, err)
	}
	if !a.configured() {
		return out, domainagg.NewError(domainagg.CodeInternal, op, "track aggregate repos not configured", nil)
	}

	now := time.Now().UTC()
	track := &tracks.Track{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Published:   in.Published,
		Metadata:    in.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	items, err := BuildTrackItems(track.ID, in.Items, now)
	if err != nil {
		return out, MapError(op, err)
	}

	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if _, err := a.deps.Tracks.Create(dbc, []*tracks.Track{track}); err != nil {
			return err
		}
		if _, err := a.deps.Items.Create(dbc, items); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return out, err
	}
	out.Track = track
	out.Items = items
	return out, nil
}

func (a *trackAggregate) UpdateTrack(ctx context.Context, in domainagg.UpdateTrackInput) (domainagg.TrackResult, error) {
	const op = "Tracks.Track.Update"
	var out domainagg.TrackResult

	updates := map[string]interface{}{}
	if in.Title != nil {
		title, err := RequireTitle(*in.Title)
		if err != nil {
			return out, MapError(op, err)
		}
		updates["title"] = title
	}
	if in.Description != nil {
		updates["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Published != nil {
		updates["published"] = *in.Published
	}
	if in.Metadata != nil {
		updates["metadata"] = in.Metadata
	}
	if !a.configured() {
		return out, domainagg.NewError(domainagg.CodeInternal, op, "track aggregate repos not configured", nil)
	}

	now := time.Now().UTC()
	updates["updated_at"] = now

	var replacement []*tracks.TrackItem
	if in.ReplaceItems {
		rows, err := BuildTrackItems(in.TrackID, in.Items, now)
		if err != nil {
			return out, MapError(op, err)
		}
		replacement = rows
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		existing, err := a.deps.Tracks.GetByID(dbc, in.TrackID)
		if err != nil {
			return err
		}
		if err := RequireFound(existing != nil, "track", in.TrackID); err != nil {
			return err
		}
		if err := a.deps.Tracks.UpdateFields(dbc, in.TrackID, updates); err != nil {
			return err
		}

		if in.ReplaceItems {
			if _, err := a.deps.Progress.FullDeleteByTrackIDs(dbc, []uuid.UUID{in.TrackID}); err != nil {
				return err
			}
			if _, err := a.deps.Items.FullDeleteByTrackIDs(dbc, []uuid.UUID{in.TrackID}); err != nil {
				return err
			}
			if _, err := a.deps.Items.Create(dbc, replacement); err != nil {
				return err
			}
		}

		track, err := a.deps.Tracks.GetByID(dbc, in.TrackID)
		if err != nil {
			return err
		}
		items, err := a.deps.Items.ListByTrackID(dbc, in.TrackID)
		if err != nil {
			return err
		}
		out.Track = track
		out.Items = items
		return nil
	})
	if err != nil {
		return domainagg.TrackResult{}, err
	}
	return out, nil
}

func (a *trackAggregate) DeleteTrack(ctx context.Context, in domainagg.DeleteTrackInput) (domainagg.DeleteTrackResult, error) {
	const op = "Tracks.Track.Delete"
	var out domainagg.DeleteTrackResult
	if !a.configured() {
		return out, domainagg.NewError(domainagg.CodeInternal, op, "track aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		existing, err := a.deps.Tracks.GetByID(dbc, in.TrackID)
		if err != nil {
			return err
		}
		if err := RequireFound(existing != nil, "track", in.TrackID); err != nil {
			return err
		}
		ids := []uuid.UUID{in.TrackID}
		progressDeleted, err := a.deps.Progress.FullDeleteByTrackIDs(dbc, ids)
		if err != nil {
			return err
		}
		itemsDeleted, err := a.deps.Items.FullDeleteByTrackIDs(dbc, ids)
		if err != nil {
			return err
		}
		if _, err := a.deps.Tracks.FullDeleteByIDs(dbc, ids); err != nil {
			return err
		}
		out.ProgressDeleted = progressDeleted
		out.ItemsDeleted = itemsDeleted
		return nil
	})
	if err != nil {
		return domainagg.DeleteTrackResult{}, err
	}
	return out, nil
}

func (a *trackAggregate) SetItemCompletion(ctx context.Context, in domainagg.SetItemCompletionInput) (*tracks.Progress, error) {
	const op = "Tracks.Track.SetItemCompletion"
	if in.UserID <= 0 {
		return nil, domainagg.Validation(op, "userId must be a positive integer")
	}
	if !a.configured() {
		return nil, domainagg.NewError(domainagg.CodeInternal, op, "track aggregate repos not configured", nil)
	}
	at := in.At.UTC()
	if in.At.IsZero() {
		at = time.Now().UTC()
	}

	var out *tracks.Progress
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		item, err := a.deps.Items.GetByID(dbc, in.TrackItemID)
		if err != nil {
			return err
		}
		if err := RequireItemInTrack(item, in.TrackID, in.TrackItemID); err != nil {
			return err
		}

		row := &tracks.Progress{
			UserID:      in.UserID,
			TrackItemID: item.ID,
			Completed:   in.Completed,
		}
		if in.Completed {
			row.CompletedAt = &at
		}
		if err := a.deps.Progress.Upsert(dbc, row); err != nil {
			return err
		}
		out, err = a.deps.Progress.Get(dbc, in.UserID, item.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
