package tracks

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/amcdental/dentalhub-backend/internal/domain"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type TrackItemRepo interface {
	Create(dbc dbctx.Context, rows []*types.TrackItem) ([]*types.TrackItem, error)

	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.TrackItem, error)
	ListByTrackID(dbc dbctx.Context, trackID uuid.UUID) ([]*types.TrackItem, error)
	ListByTrackIDs(dbc dbctx.Context, trackIDs []uuid.UUID) ([]*types.TrackItem, error)

	FullDeleteByTrackIDs(dbc dbctx.Context, trackIDs []uuid.UUID) (int64, error)
}

type trackItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrackItemRepo(db *gorm.DB, baseLog *logger.Logger) TrackItemRepo {
	return &trackItemRepo{db: db, log: baseLog.With("repo", "TrackItemRepo")}
}

func (r *trackItemRepo) Create(dbc dbctx.Context, rows []*types.TrackItem) ([]*types.TrackItem, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.TrackItem{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns (nil, nil) when the item does not exist.
func (r *trackItemRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.TrackItem, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.TrackItem
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *trackItemRepo) ListByTrackID(dbc dbctx.Context, trackID uuid.UUID) ([]*types.TrackItem, error) {
	if trackID == uuid.Nil {
		return []*types.TrackItem{}, nil
	}
	return r.ListByTrackIDs(dbc, []uuid.UUID{trackID})
}

// ListByTrackIDs orders by track, then position. Ties on position keep insertion order.
func (r *trackItemRepo) ListByTrackIDs(dbc dbctx.Context, trackIDs []uuid.UUID) ([]*types.TrackItem, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.TrackItem{}
	if len(trackIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("track_id IN ?", trackIDs).
		Order("track_id ASC").
		Order("position ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *trackItemRepo) FullDeleteByTrackIDs(dbc dbctx.Context, trackIDs []uuid.UUID) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(trackIDs) == 0 {
		return 0, nil
	}
	res := t.WithContext(dbc.Ctx).Where("track_id IN ?", trackIDs).Delete(&types.TrackItem{})
	return res.RowsAffected, res.Error
}
