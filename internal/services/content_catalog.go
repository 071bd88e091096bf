package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/amcdental/dentalhub-backend/internal/data/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/data/repos"
	types "github.com/amcdental/dentalhub-backend/internal/domain"
	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type CreateArticleInput struct {
	Title    string
	Slug     string
	Summary  string
	Category string
	FileURL  string
}

type CreateLessonInput struct {
	Title       string
	Description string
	VideoURL    string
	Duration    int
}

type CreateToolInput struct {
	Title       string
	Description string
	Category    string
	FileURL     string
}

// ContentCatalog registers and reads the article, lesson and tool stores that
// track items point into.
type ContentCatalog interface {
	CreateArticle(ctx context.Context, in CreateArticleInput) (*types.Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*types.Article, error)
	ListArticles(ctx context.Context, category string, limit int) ([]*types.Article, error)

	CreateLesson(ctx context.Context, in CreateLessonInput) (*types.Lesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, error)
	ListLessons(ctx context.Context, limit int) ([]*types.Lesson, error)

	CreateTool(ctx context.Context, in CreateToolInput) (*types.Tool, error)
	GetTool(ctx context.Context, id uuid.UUID) (*types.Tool, error)
	ListTools(ctx context.Context, category string, limit int) ([]*types.Tool, error)
}

type contentCatalog struct {
	log      *logger.Logger
	articles repos.ArticleRepo
	lessons  repos.LessonRepo
	tools    repos.ToolRepo
}

func NewContentCatalog(log *logger.Logger, articles repos.ArticleRepo, lessons repos.LessonRepo, tools repos.ToolRepo) ContentCatalog {
	return &contentCatalog{
		log:      log.With("service", "ContentCatalog"),
		articles: articles,
		lessons:  lessons,
		tools:    tools,
	}
}

// maxSlugAttempts bounds the suffix probe when many articles share a title.
const maxSlugAttempts = 20

func (c *contentCatalog) CreateArticle(ctx context.Context, in CreateArticleInput) (*types.Article, error) {
	const op = "Content.Article.Create"
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domainagg.Validation(op, "title is required")
	}
	dbc := dbctx.Context{Ctx: ctx}
	s, err := c.uniqueSlug(dbc, in.Slug, title)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	row := &types.Article{
		Title:    title,
		Slug:     s,
		Summary:  strings.TrimSpace(in.Summary),
		Category: strings.TrimSpace(in.Category),
		FileURL:  strings.TrimSpace(in.FileURL),
	}
	if _, err := c.articles.Create(dbc, []*types.Article{row}); err != nil {
		return nil, aggregates.MapError(op, err)
	}
	c.log.Debug("article created", "article_id", row.ID, "slug", row.Slug)
	return row, nil
}

// uniqueSlug derives a slug from the explicit value or the title and appends
// "-N" until it is free.
func (c *contentCatalog) uniqueSlug(dbc dbctx.Context, explicit, title string) (string, error) {
	base := slug.Make(strings.TrimSpace(explicit))
	if base == "" {
		base = slug.Make(title)
	}
	if base == "" {
		base = "article"
	}
	n, err := c.articles.CountBySlugPrefix(dbc, base)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return base, nil
	}
	for i := int64(0); i < maxSlugAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d", base, n+1+i)
		existing, err := c.articles.GetBySlug(dbc, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", aggregates.ConflictError("could not allocate a unique slug for " + base)
}

func (c *contentCatalog) GetArticle(ctx context.Context, id uuid.UUID) (*types.Article, error) {
	const op = "Content.Article.Get"
	row, err := c.articles.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, domainagg.NotFound(op, "article not found")
	}
	return row, nil
}

func (c *contentCatalog) ListArticles(ctx context.Context, category string, limit int) ([]*types.Article, error) {
	rows, err := c.articles.List(dbctx.Context{Ctx: ctx}, category, limit)
	if err != nil {
		return nil, aggregates.MapError("Content.Article.List", err)
	}
	return rows, nil
}

func (c *contentCatalog) CreateLesson(ctx context.Context, in CreateLessonInput) (*types.Lesson, error) {
	const op = "Content.Lesson.Create"
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domainagg.Validation(op, "title is required")
	}
	if in.Duration < 0 {
		return nil, domainagg.Validation(op, "duration must not be negative")
	}
	row := &types.Lesson{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		VideoURL:    strings.TrimSpace(in.VideoURL),
		Duration:    in.Duration,
	}
	if _, err := c.lessons.Create(dbctx.Context{Ctx: ctx}, []*types.Lesson{row}); err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return row, nil
}

func (c *contentCatalog) GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, error) {
	const op = "Content.Lesson.Get"
	row, err := c.lessons.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, domainagg.NotFound(op, "lesson not found")
	}
	return row, nil
}

func (c *contentCatalog) ListLessons(ctx context.Context, limit int) ([]*types.Lesson, error) {
	rows, err := c.lessons.List(dbctx.Context{Ctx: ctx}, limit)
	if err != nil {
		return nil, aggregates.MapError("Content.Lesson.List", err)
	}
	return rows, nil
}

func (c *contentCatalog) CreateTool(ctx context.Context, in CreateToolInput) (*types.Tool, error) {
	const op = "Content.Tool.Create"
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domainagg.Validation(op, "title is required")
	}
	row := &types.Tool{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		FileURL:     strings.TrimSpace(in.FileURL),
	}
	if _, err := c.tools.Create(dbctx.Context{Ctx: ctx}, []*types.Tool{row}); err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return row, nil
}

func (c *contentCatalog) GetTool(ctx context.Context, id uuid.UUID) (*types.Tool, error) {
	const op = "Content.Tool.Get"
	row, err := c.tools.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, domainagg.NotFound(op, "tool not found")
	}
	return row, nil
}

func (c *contentCatalog) ListTools(ctx context.Context, category string, limit int) ([]*types.Tool, error) {
	rows, err := c.tools.List(dbctx.Context{Ctx: ctx}, category, limit)
	if err != nil {
		return nil, aggregates.MapError("Content.Tool.List", err)
	}
	return rows, nil
}
