package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/amcdental/dentalhub-backend/internal/data/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/data/repos"
	types "github.com/amcdental/dentalhub-backend/internal/domain"
	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

// TrackService is the read/write surface for tracks. Writes go through the
// track aggregate; reads load rows and hand them to the assembler.
type TrackService interface {
	CreateTrack(ctx context.Context, in domainagg.CreateTrackInput) (*types.TrackView, error)
	GetTrack(ctx context.Context, trackID uuid.UUID, viewerID *int64) (*types.TrackView, error)
	ListTracks(ctx context.Context, publishedOnly bool) ([]*types.TrackView, error)
	UpdateTrack(ctx context.Context, in domainagg.UpdateTrackInput) (*types.TrackView, error)
	DeleteTrack(ctx context.Context, trackID uuid.UUID) error
}

type trackService struct {
	log       *logger.Logger
	agg       domainagg.TrackAggregate
	tracks    repos.TrackRepo
	items     repos.TrackItemRepo
	assembler TrackAssembler
}

func NewTrackService(
	log *logger.Logger,
	agg domainagg.TrackAggregate,
	tracks repos.TrackRepo,
	items repos.TrackItemRepo,
	assembler TrackAssembler,
) TrackService {
	return &trackService{
		log:       log.With("service", "TrackService"),
		agg:       agg,
		tracks:    tracks,
		items:     items,
		assembler: assembler,
	}
}

// CreateTrack returns the stored rows without content resolution.
func (s *trackService) CreateTrack(ctx context.Context, in domainagg.CreateTrackInput) (*types.TrackView, error) {
	res, err := s.agg.CreateTrack(ctx, in)
	if err != nil {
		return nil, err
	}
	view := tracks.NewView(res.Track)
	for _, it := range sortItems(res.Items) {
		view.Items = append(view.Items, tracks.NewItemView(it))
	}
	s.log.Info("track created", "track_id", res.Track.ID, "items", len(res.Items))
	return view, nil
}

func (s *trackService) GetTrack(ctx context.Context, trackID uuid.UUID, viewerID *int64) (*types.TrackView, error) {
	const op = "Tracks.Track.Get"
	if viewerID != nil && *viewerID <= 0 {
		return nil, domainagg.Validation(op, "userId must be a positive integer")
	}
	dbc := dbctx.Context{Ctx: ctx}
	track, err := s.tracks.GetByID(dbc, trackID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if track == nil {
		return nil, domainagg.NotFound(op, "track not found")
	}
	items, err := s.items.ListByTrackID(dbc, trackID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	view, err := s.assembler.Assemble(ctx, track, items, viewerID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	tracks.ApplyGate(view.Items)
	if viewerID != nil {
		view.Progress = view.Summarize()
	}
	return view, nil
}

func (s *trackService) ListTracks(ctx context.Context, publishedOnly bool) ([]*types.TrackView, error) {
	const op = "Tracks.Track.List"
	dbc := dbctx.Context{Ctx: ctx}
	rows, err := s.tracks.List(dbc, publishedOnly)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if len(rows) == 0 {
		return []*types.TrackView{}, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, tr := range rows {
		ids = append(ids, tr.ID)
	}
	items, err := s.items.ListByTrackIDs(dbc, ids)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	byTrack := make(map[uuid.UUID][]*types.TrackItem, len(rows))
	for _, it := range items {
		byTrack[it.TrackID] = append(byTrack[it.TrackID], it)
	}
	return s.assembler.AssembleMany(ctx, rows, byTrack), nil
}

// UpdateTrack returns the updated track assembled without user context.
func (s *trackService) UpdateTrack(ctx context.Context, in domainagg.UpdateTrackInput) (*types.TrackView, error) {
	const op = "Tracks.Track.Update"
	res, err := s.agg.UpdateTrack(ctx, in)
	if err != nil {
		return nil, err
	}
	view, err := s.assembler.Assemble(ctx, res.Track, res.Items, nil)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	s.log.Info("track updated", "track_id", in.TrackID, "replaced_items", in.ReplaceItems)
	return view, nil
}

func (s *trackService) DeleteTrack(ctx context.Context, trackID uuid.UUID) error {
	res, err := s.agg.DeleteTrack(ctx, domainagg.DeleteTrackInput{TrackID: trackID})
	if err != nil {
		return err
	}
	s.log.Info("track deleted", "track_id", trackID, "items", res.ItemsDeleted, "progress", res.ProgressDeleted)
	return nil
}
