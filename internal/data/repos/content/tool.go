package content

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/amcdental/dentalhub-backend/internal/domain"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type ToolRepo interface {
	Create(dbc dbctx.Context, rows []*types.Tool) ([]*types.Tool, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Tool, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Tool, error)
	List(dbc dbctx.Context, category string, limit int) ([]*types.Tool, error)
}

type toolRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewToolRepo(db *gorm.DB, baseLog *logger.Logger) ToolRepo {
	return &toolRepo{db: db, log: baseLog.With("repo", "ToolRepo")}
}

func (r *toolRepo) Create(dbc dbctx.Context, rows []*types.Tool) ([]*types.Tool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Tool{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *toolRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Tool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Tool{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *toolRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Tool, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *toolRepo) List(dbc dbctx.Context, category string, limit int) ([]*types.Tool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Tool{}
	q := t.WithContext(dbc.Ctx).Model(&types.Tool{})
	if c := strings.TrimSpace(category); c != "" {
		q = q.Where("category = ?", c)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
