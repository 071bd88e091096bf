package app

import (
	"gorm.io/gorm"

	"github.com/amcdental/dentalhub-backend/internal/data/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/observability"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
	"github.com/amcdental/dentalhub-backend/internal/realtime/bus"
	"github.com/amcdental/dentalhub-backend/internal/services"
)

type Services struct {
	Resolver  services.ContentResolver
	Assembler services.TrackAssembler
	Tracks    services.TrackService
	Progress  services.TrackProgressService
	Catalog   services.ContentCatalog
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos, events bus.Bus, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	trackAgg := aggregates.NewTrackAggregate(aggregates.TrackAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: aggregates.NewObservabilityHooks(metrics),
		},
		Tracks:   r.Track,
		Items:    r.TrackItem,
		Progress: r.TrackProgress,
	})

	resolver := services.NewContentResolver(log, r.Article, r.Lesson, r.Tool, metrics)
	assembler := services.NewTrackAssembler(log, resolver, r.TrackProgress)
	return Services{
		Resolver:  resolver,
		Assembler: assembler,
		Tracks:    services.NewTrackService(log, trackAgg, r.Track, r.TrackItem, assembler),
		Progress:  services.NewTrackProgressService(log, trackAgg, r.Track, r.TrackProgress, events, metrics),
		Catalog:   services.NewContentCatalog(log, r.Article, r.Lesson, r.Tool),
	}
}
