package content

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/amcdental/dentalhub-backend/internal/domain"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type ArticleRepo interface {
	Create(dbc dbctx.Context, rows []*types.Article) ([]*types.Article, error)

	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Article, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Article, error)
	GetBySlug(dbc dbctx.Context, slug string) (*types.Article, error)
	CountBySlugPrefix(dbc dbctx.Context, prefix string) (int64, error)

	List(dbc dbctx.Context, category string, limit int) ([]*types.Article, error)
}

type articleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArticleRepo(db *gorm.DB, baseLog *logger.Logger) ArticleRepo {
	return &articleRepo{db: db, log: baseLog.With("repo", "ArticleRepo")}
}

func (r *articleRepo) Create(dbc dbctx.Context, rows []*types.Article) ([]*types.Article, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Article{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *articleRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Article, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Article{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *articleRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Article, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *articleRepo) GetBySlug(dbc dbctx.Context, slug string) (*types.Article, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	var out []*types.Article
	if err := t.WithContext(dbc.Ctx).Where("slug = ?", slug).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// CountBySlugPrefix counts the slug itself and any "<prefix>-N" variants.
func (r *articleRepo) CountBySlugPrefix(dbc dbctx.Context, prefix string) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var n int64
	err := t.WithContext(dbc.Ctx).
		Model(&types.Article{}).
		Where("slug = ? OR slug LIKE ?", prefix, prefix+"-%").
		Count(&n).Error
	return n, err
}

func (r *articleRepo) List(dbc dbctx.Context, category string, limit int) ([]*types.Article, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Article{}
	q := t.WithContext(dbc.Ctx).Model(&types.Article{})
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
