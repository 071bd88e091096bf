package app

import (
	"gorm.io/gorm"

	apphttp "github.com/amcdental/dentalhub-backend/internal/http"
	httpH "github.com/amcdental/dentalhub-backend/internal/http/handlers"
	"github.com/amcdental/dentalhub-backend/internal/observability"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	Track   *httpH.TrackHandler
	Content *httpH.ContentHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(db),
		Track:   httpH.NewTrackHandler(s.Tracks, s.Progress),
		Content: httpH.NewContentHandler(s.Catalog),
	}
}

func wireServer(log *logger.Logger, cfg Config, h Handlers, metrics *observability.Metrics) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		ServiceName:    cfg.ServiceName,
		TrackHandler:   h.Track,
		ContentHandler: h.Content,
		HealthHandler:  h.Health,
	})
}
