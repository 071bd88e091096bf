package tracks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/amcdental/dentalhub-backend/internal/domain"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type TrackProgressRepo interface {
	Get(dbc dbctx.Context, userID int64, trackItemID uuid.UUID) (*types.TrackProgress, error)
	ListByUserAndItemIDs(dbc dbctx.Context, userID int64, trackItemIDs []uuid.UUID, completedOnly bool) ([]*types.TrackProgress, error)
	ListByUserAndTrackID(dbc dbctx.Context, userID int64, trackID uuid.UUID) ([]*types.TrackProgress, error)

	Upsert(dbc dbctx.Context, row *types.TrackProgress) error

	FullDeleteByTrackIDs(dbc dbctx.Context, trackIDs []uuid.UUID) (int64, error)
}

type trackProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrackProgressRepo(db *gorm.DB, baseLog *logger.Logger) TrackProgressRepo {
	return &trackProgressRepo{db: db, log: baseLog.With("repo", "TrackProgressRepo")}
}

func (r *trackProgressRepo) Get(dbc dbctx.Context, userID int64, trackItemID uuid.UUID) (*types.TrackProgress, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if trackItemID == uuid.Nil {
		return nil, nil
	}
	var row types.TrackProgress
	err := t.WithContext(dbc.Ctx).
		Where("user_id = ? AND track_item_id = ?", userID, trackItemID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *trackProgressRepo) ListByUserAndItemIDs(dbc dbctx.Context, userID int64, trackItemIDs []uuid.UUID, completedOnly bool) ([]*types.TrackProgress, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.TrackProgress{}
	if len(trackItemIDs) == 0 {
		return out, nil
	}
	q := t.WithContext(dbc.Ctx).Where("user_id = ? AND track_item_id IN ?", userID, trackItemIDs)
	if completedOnly {
		q = q.Where("completed = ?", true)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *trackProgressRepo) ListByUserAndTrackID(dbc dbctx.Context, userID int64, trackID uuid.UUID) ([]*types.TrackProgress, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.TrackProgress{}
	if trackID == uuid.Nil {
		return out, nil
	}
	items := t.Session(&gorm.Session{NewDB: true}).Model(&types.TrackItem{}).Select("id").Where("track_id = ?", trackID)
	if err := t.WithContext(dbc.Ctx).
		Where("user_id = ? AND track_item_id IN (?)", userID, items).
		Order("updated_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes the (user_id, track_item_id) row, overwriting completion state on conflict.
func (r *trackProgressRepo) Upsert(dbc dbctx.Context, row *types.TrackProgress) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.TrackItemID == uuid.Nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	now := time.Now().UTC()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now

	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "track_item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"completed",
				"completed_at",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *trackProgressRepo) FullDeleteByTrackIDs(dbc dbctx.Context, trackIDs []uuid.UUID) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(trackIDs) == 0 {
		return 0, nil
	}
	items := t.Session(&gorm.Session{NewDB: true}).Model(&types.TrackItem{}).Select("id").Where("track_id IN ?", trackIDs)
	res := t.WithContext(dbc.Ctx).
		Where("track_item_id IN (?)", items).
		Delete(&types.TrackProgress{})
	return res.RowsAffected, res.Error
}
