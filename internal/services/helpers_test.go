package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/amcdental/dentalhub-backend/internal/data/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/data/repos"
	repotest "github.com/amcdental/dentalhub-backend/internal/data/repos/testutil"
	types "github.com/amcdental/dentalhub-backend/internal/domain"
	"github.com/amcdental/dentalhub-backend/internal/observability"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
	"github.com/amcdental/dentalhub-backend/internal/realtime"
	"github.com/amcdental/dentalhub-backend/internal/services"
)

type env struct {
	ctx      context.Context
	db       *gorm.DB
	articles repos.ArticleRepo
	lessons  repos.LessonRepo
	tools    repos.ToolRepo
	progress repos.TrackProgressRepo
	registry *prometheus.Registry
	metrics  *observability.Metrics
	bus      *recordingBus

	resolver services.ContentResolver
	tracks   services.TrackService
	marks    services.TrackProgressService
	catalog  services.ContentCatalog
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := repotest.DB(t)
	log := repotest.Logger(t)
	reg := prometheus.NewRegistry()
	e := &env{
		ctx:      context.Background(),
		db:       db,
		articles: repos.NewArticleRepo(db, log),
		lessons:  repos.NewLessonRepo(db, log),
		tools:    repos.NewToolRepo(db, log),
		progress: repos.NewTrackProgressRepo(db, log),
		registry: reg,
		metrics:  observability.New(reg),
		bus:      &recordingBus{},
	}
	e.wire(t)
	return e
}

// wire builds the services over the env's repos; tests swap a repo and rewire.
func (e *env) wire(t *testing.T) {
	t.Helper()
	log := repotest.Logger(t)
	trackRepo := repos.NewTrackRepo(e.db, log)
	itemRepo := repos.NewTrackItemRepo(e.db, log)
	agg := aggregates.NewTrackAggregate(aggregates.TrackAggregateDeps{
		Base:     aggregates.BaseDeps{DB: e.db, Log: log},
		Tracks:   trackRepo,
		Items:    itemRepo,
		Progress: e.progress,
	})
	e.resolver = services.NewContentResolver(log, e.articles, e.lessons, e.tools, e.metrics)
	assembler := services.NewTrackAssembler(log, e.resolver, e.progress)
	e.tracks = services.NewTrackService(log, agg, trackRepo, itemRepo, assembler)
	e.marks = services.NewTrackProgressService(log, agg, trackRepo, e.progress, e.bus, e.metrics)
	e.catalog = services.NewContentCatalog(log, e.articles, e.lessons, e.tools)
}

func (e *env) countProgress(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&types.TrackProgress{}).Count(&n).Error; err != nil {
		t.Fatalf("count progress: %v", err)
	}
	return n
}

type recordingBus struct {
	mu     sync.Mutex
	events []realtime.ProgressEvent
	err    error
}

func (b *recordingBus) Publish(_ context.Context, evt realtime.ProgressEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Close() error { return nil }

func (b *recordingBus) Events() []realtime.ProgressEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]realtime.ProgressEvent, len(b.events))
	copy(out, b.events)
	return out
}

// failingLessons fails every batched lookup.
type failingLessons struct {
	repos.LessonRepo
}

func (failingLessons) GetByIDs(dbctx.Context, []uuid.UUID) ([]*types.Lesson, error) {
	return nil, errors.New("lesson store unavailable")
}
