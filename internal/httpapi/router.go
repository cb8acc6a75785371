package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openmusicarchive/catalogue/internal/catalogue/store"
	"github.com/openmusicarchive/catalogue/internal/config"
	"github.com/openmusicarchive/catalogue/internal/metrics"
	"github.com/openmusicarchive/catalogue/internal/middleware"
	"github.com/openmusicarchive/catalogue/pkg/logger"
)

// NewRouter wires middleware and routes into a gin engine.
func NewRouter(cfg *config.Config, st *store.Store, log *logger.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "prod", "production", "release":
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(middleware.NewCORSMiddleware(cfg.Server.AllowedOrigins).Handler())

	if cfg.Server.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, log)
		limiter.StartCleanup(time.Minute)
		r.Use(limiter.Handler())
	}

	r.Use(middleware.MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	h := NewHandler(st, log)

	persons := r.Group("/persons")
	{
		persons.GET("", h.SearchPersons)
		persons.GET("/:id", h.GetPerson)
		persons.POST("", h.CreatePerson)
		persons.POST("/bulk", h.BulkCreatePersons)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", h.SearchArtists)
		artists.GET("/:id", h.GetArtist)
		artists.POST("", h.CreateArtist)
	}

	works := r.Group("/works")
	{
		works.GET("", h.SearchWorks)
		works.GET("/:id", h.GetWork)
		works.GET("/:id/links", h.GetWorkLinks)
		works.POST("", h.CreateWork)
	}

	r.GET("/search", h.UnifiedSearch)

	return r
}
