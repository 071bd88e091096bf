package tracks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/amcdental/dentalhub-backend/internal/domain"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type TrackRepo interface {
	Create(dbc dbctx.Context, rows []*types.Track) ([]*types.Track, error)

	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Track, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Track, error)

	List(dbc dbctx.Context, publishedOnly bool) ([]*types.Track, error)

	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	FullDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) (int64, error)
}

type trackRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrackRepo(db *gorm.DB, baseLog *logger.Logger) TrackRepo {
	return &trackRepo{db: db, log: baseLog.With("repo", "TrackRepo")}
}

func (r *trackRepo) Create(dbc dbctx.Context, rows []*types.Track) ([]*types.Track, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Track{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *trackRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Track, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Track
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns (nil, nil) when the track does not exist.
func (r *trackRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Track, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *trackRepo) List(dbc dbctx.Context, publishedOnly bool) ([]*types.Track, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Track
	q := t.WithContext(dbc.Ctx).Model(&types.Track{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if err := q.Order("created_at DESC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *trackRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	return t.WithContext(dbc.Ctx).
		Model(&types.Track{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *trackRepo) FullDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := t.WithContext(dbc.Ctx).Where("id IN ?", ids).Delete(&types.Track{})
	return res.RowsAffected, res.Error
}
