package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/amcdental/dentalhub-backend/internal/data/repos"
	types "github.com/amcdental/dentalhub-backend/internal/domain"
	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

// TrackAssembler builds read views: ordered items, resolved details and,
// for a viewing user, completion flags.
type TrackAssembler interface {
	Assemble(ctx context.Context, track *types.Track, items []*types.TrackItem, viewerID *int64) (*types.TrackView, error)
	AssembleMany(ctx context.Context, rows []*types.Track, itemsByTrack map[uuid.UUID][]*types.TrackItem) []*types.TrackView
}

type trackAssembler struct {
	log      *logger.Logger
	resolver ContentResolver
	progress repos.TrackProgressRepo
}

func NewTrackAssembler(log *logger.Logger, resolver ContentResolver, progress repos.TrackProgressRepo) TrackAssembler {
	return &trackAssembler{
		log:      log.With("service", "TrackAssembler"),
		resolver: resolver,
		progress: progress,
	}
}

func (a *trackAssembler) Assemble(ctx context.Context, track *types.Track, items []*types.TrackItem, viewerID *int64) (*types.TrackView, error) {
	if track == nil {
		return nil, nil
	}
	ordered := sortItems(items)
	details := a.resolver.ResolveMany(ctx, refsOf(ordered))

	completed := map[uuid.UUID]bool{}
	if viewerID != nil && len(ordered) > 0 {
		ids := make([]uuid.UUID, 0, len(ordered))
		for _, it := range ordered {
			ids = append(ids, it.ID)
		}
		rows, err := a.progress.ListByUserAndItemIDs(dbctx.Context{Ctx: ctx}, *viewerID, ids, true)
		if err != nil {
			return nil, err
		}
		for _, p := range rows {
			completed[p.TrackItemID] = true
		}
	}

	view := tracks.NewView(track)
	for _, it := range ordered {
		iv := tracks.NewItemView(it)
		iv.Details = details[it.Ref()]
		iv.Completed = completed[it.ID]
		view.Items = append(view.Items, iv)
	}
	return view, nil
}

// AssembleMany resolves every item of every track in one batched pass. Items are never completed.
func (a *trackAssembler) AssembleMany(ctx context.Context, rows []*types.Track, itemsByTrack map[uuid.UUID][]*types.TrackItem) []*types.TrackView {
	var refs []types.ItemRef
	for _, tr := range rows {
		refs = append(refs, refsOf(itemsByTrack[tr.ID])...)
	}
	details := a.resolver.ResolveMany(ctx, refs)

	out := make([]*types.TrackView, 0, len(rows))
	for _, tr := range rows {
		view := tracks.NewView(tr)
		for _, it := range sortItems(itemsByTrack[tr.ID]) {
			iv := tracks.NewItemView(it)
			iv.Details = details[it.Ref()]
			view.Items = append(view.Items, iv)
		}
		out = append(out, view)
	}
	return out
}

// sortItems orders by position, then insertion time, then id. Gaps and duplicates are kept.
func sortItems(items []*types.TrackItem) []*types.TrackItem {
	out := make([]*types.TrackItem, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func refsOf(items []*types.TrackItem) []types.ItemRef {
	out := make([]types.ItemRef, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it.Ref())
		}
	}
	return out
}
