package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/amcdental/dentalhub-backend/internal/http/handlers"
	httpMW "github.com/amcdental/dentalhub-backend/internal/http/middleware"
	"github.com/amcdental/dentalhub-backend/internal/observability"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string

	TrackHandler   *httpH.TrackHandler
	ContentHandler *httpH.ContentHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Tracks. Every route under /tracks/ names the track ":id" so gin's tree accepts them together.
		if h := cfg.TrackHandler; h != nil {
			api.POST("/tracks", h.CreateTrack)
			api.GET("/tracks", h.ListTracks)
			api.GET("/tracks/:id", h.GetTrack)
			api.PUT("/tracks/:id", h.UpdateTrack)
			api.DELETE("/tracks/:id", h.DeleteTrack)
			api.POST("/tracks/:id/items/:itemId/complete", h.MarkComplete)
			api.POST("/tracks/:id/items/:itemId/uncomplete", h.MarkIncomplete)
			api.GET("/tracks/:id/progress", h.ListProgress)
		}

		// Content stores
		if h := cfg.ContentHandler; h != nil {
			api.POST("/articles", h.CreateArticle)
			api.GET("/articles", h.ListArticles)
			api.GET("/articles/:id", h.GetArticle)
			api.POST("/lessons", h.CreateLesson)
			api.GET("/lessons", h.ListLessons)
			api.GET("/lessons/:id", h.GetLesson)
			api.POST("/tools", h.CreateTool)
			api.GET("/tools", h.ListTools)
			api.GET("/tools/:id", h.GetTool)
		}
	}

	return r
}
