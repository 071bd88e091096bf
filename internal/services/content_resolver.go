package services

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/amcdental/dentalhub-backend/internal/data/repos"
	types "github.com/amcdental/dentalhub-backend/internal/domain"
	"github.com/amcdental/dentalhub-backend/internal/observability"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

// ContentResolver turns (type, itemId) references into display summaries.
// Lookup failures and unknown types never surface as errors; the reference
// simply has no summary.
type ContentResolver interface {
	Resolve(ctx context.Context, ref types.ItemRef) *types.ContentSummary
	ResolveMany(ctx context.Context, refs []types.ItemRef) map[types.ItemRef]*types.ContentSummary
}

type contentResolver struct {
	log      *logger.Logger
	articles repos.ArticleRepo
	lessons  repos.LessonRepo
	tools    repos.ToolRepo
	metrics  *observability.Metrics
}

func NewContentResolver(log *logger.Logger, articles repos.ArticleRepo, lessons repos.LessonRepo, tools repos.ToolRepo, metrics *observability.Metrics) ContentResolver {
	return &contentResolver{
		log:      log.With("service", "ContentResolver"),
		articles: articles,
		lessons:  lessons,
		tools:    tools,
		metrics:  metrics,
	}
}

func (r *contentResolver) Resolve(ctx context.Context, ref types.ItemRef) *types.ContentSummary {
	return r.ResolveMany(ctx, []types.ItemRef{ref})[ref]
}

// ResolveMany issues one IN query per content store and runs the stores concurrently.
// A failing store leaves only its own references unresolved.
func (r *contentResolver) ResolveMany(ctx context.Context, refs []types.ItemRef) map[types.ItemRef]*types.ContentSummary {
	out := make(map[types.ItemRef]*types.ContentSummary, len(refs))
	if len(refs) == 0 {
		return out
	}
	ctx, span := observability.Tracer().Start(ctx, "ContentResolver.ResolveMany")
	defer span.End()
	span.SetAttributes(attribute.Int("refs", len(refs)))

	idsByType := map[types.ItemType][]uuid.UUID{}
	seen := map[types.ItemRef]bool{}
	for _, ref := range refs {
		if seen[ref] {
			continue
		}
		seen[ref] = true
		if !ref.Type.Valid() || ref.ID == uuid.Nil {
			r.metrics.AddContentResolve(string(ref.Type), "unknown", 1)
			continue
		}
		idsByType[ref.Type] = append(idsByType[ref.Type], ref.ID)
	}

	dbc := dbctx.Context{Ctx: ctx}
	var articles, lessons, tools map[uuid.UUID]*types.ContentSummary
	var g errgroup.Group
	if ids := idsByType[types.ItemTypeArticle]; len(ids) > 0 {
		g.Go(func() error {
			rows, err := r.articles.GetByIDs(dbc, ids)
			sums := make([]*types.ContentSummary, 0, len(rows))
			for _, row := range rows {
				sums = append(sums, row.Summarize())
			}
			articles = r.collect(types.ItemTypeArticle, len(ids), sums, err)
			return nil
		})
	}
	if ids := idsByType[types.ItemTypeLesson]; len(ids) > 0 {
		g.Go(func() error {
			rows, err := r.lessons.GetByIDs(dbc, ids)
			sums := make([]*types.ContentSummary, 0, len(rows))
			for _, row := range rows {
				sums = append(sums, row.Summarize())
			}
			lessons = r.collect(types.ItemTypeLesson, len(ids), sums, err)
			return nil
		})
	}
	if ids := idsByType[types.ItemTypeTool]; len(ids) > 0 {
		g.Go(func() error {
			rows, err := r.tools.GetByIDs(dbc, ids)
			sums := make([]*types.ContentSummary, 0, len(rows))
			for _, row := range rows {
				sums = append(sums, row.Summarize())
			}
			tools = r.collect(types.ItemTypeTool, len(ids), sums, err)
			return nil
		})
	}
	// goroutines report failures through collect, so Wait never errors.
	_ = g.Wait()

	byType := map[types.ItemType]map[uuid.UUID]*types.ContentSummary{
		types.ItemTypeArticle: articles,
		types.ItemTypeLesson:  lessons,
		types.ItemTypeTool:    tools,
	}
	for ref := range seen {
		if s, ok := byType[ref.Type][ref.ID]; ok {
			out[ref] = s
		}
	}
	return out
}

func (r *contentResolver) collect(typ types.ItemType, requested int, sums []*types.ContentSummary, err error) map[uuid.UUID]*types.ContentSummary {
	if err != nil {
		r.log.Warn("content lookup failed", "type", typ, "count", requested, "error", err)
		r.metrics.AddContentResolve(string(typ), "error", requested)
		return nil
	}
	found := make(map[uuid.UUID]*types.ContentSummary, len(sums))
	for _, s := range sums {
		if s != nil {
			found[s.ID] = s
		}
	}
	r.metrics.AddContentResolve(string(typ), "hit", len(found))
	r.metrics.AddContentResolve(string(typ), "miss", requested-len(found))
	return found
}
