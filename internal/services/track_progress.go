package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amcdental/dentalhub-backend/internal/data/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/data/repos"
	types "github.com/amcdental/dentalhub-backend/internal/domain"
	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/observability"
	"github.com/amcdental/dentalhub-backend/internal/platform/ctxutil"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
	"github.com/amcdental/dentalhub-backend/internal/realtime"
	"github.com/amcdental/dentalhub-backend/internal/realtime/bus"
)

// TrackProgressService records per-user completion. The sequential gate is
// advisory, so marking a locked item succeeds.
type TrackProgressService interface {
	MarkComplete(ctx context.Context, userID int64, trackID, trackItemID uuid.UUID) (*types.TrackProgress, error)
	MarkIncomplete(ctx context.Context, userID int64, trackID, trackItemID uuid.UUID) (*types.TrackProgress, error)
	ListProgress(ctx context.Context, userID int64, trackID uuid.UUID) ([]*types.TrackProgress, error)
}

type trackProgressService struct {
	log      *logger.Logger
	agg      domainagg.TrackAggregate
	tracks   repos.TrackRepo
	progress repos.TrackProgressRepo
	events   bus.Bus
	metrics  *observability.Metrics
	now      func() time.Time
}

func NewTrackProgressService(
	log *logger.Logger,
	agg domainagg.TrackAggregate,
	tracks repos.TrackRepo,
	progress repos.TrackProgressRepo,
	events bus.Bus,
	metrics *observability.Metrics,
) TrackProgressService {
	if events == nil {
		events = bus.NewNopBus()
	}
	return &trackProgressService{
		log:      log.With("service", "TrackProgressService"),
		agg:      agg,
		tracks:   tracks,
		progress: progress,
		events:   events,
		metrics:  metrics,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *trackProgressService) MarkComplete(ctx context.Context, userID int64, trackID, trackItemID uuid.UUID) (*types.TrackProgress, error) {
	return s.set(ctx, userID, trackID, trackItemID, true)
}

func (s *trackProgressService) MarkIncomplete(ctx context.Context, userID int64, trackID, trackItemID uuid.UUID) (*types.TrackProgress, error) {
	return s.set(ctx, userID, trackID, trackItemID, false)
}

func (s *trackProgressService) set(ctx context.Context, userID int64, trackID, trackItemID uuid.UUID, completed bool) (*types.TrackProgress, error) {
	row, err := s.agg.SetItemCompletion(ctx, domainagg.SetItemCompletionInput{
		UserID:      userID,
		TrackID:     trackID,
		TrackItemID: trackItemID,
		Completed:   completed,
		At:          s.now(),
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, trackID, row)
	return row, nil
}

// publish is fire-and-forget: a bus failure never fails the write that already committed.
func (s *trackProgressService) publish(ctx context.Context, trackID uuid.UUID, row *types.TrackProgress) {
	if row == nil {
		return
	}
	evt := realtime.ProgressEvent{
		Type:        realtime.EventTrackProgressChanged,
		UserID:      row.UserID,
		TrackID:     trackID,
		TrackItemID: row.TrackItemID,
		Completed:   row.Completed,
		CompletedAt: row.CompletedAt,
		OccurredAt:  s.now(),
		RequestID:   ctxutil.RequestID(ctx),
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Warn("progress event publish failed", "track_id", trackID, "track_item_id", row.TrackItemID, "error", err)
		s.metrics.IncProgressEvent("failed")
		return
	}
	s.metrics.IncProgressEvent("published")
}

func (s *trackProgressService) ListProgress(ctx context.Context, userID int64, trackID uuid.UUID) ([]*types.TrackProgress, error) {
	const op = "Tracks.Progress.List"
	if userID <= 0 {
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
	rows, err := s.progress.ListByUserAndTrackID(dbc, userID, trackID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if rows == nil {
		rows = []*types.TrackProgress{}
	}
	return rows, nil
}
