package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hexforge/cryptohub/internal/config"
	"hexforge/cryptohub/internal/handler/middleware"
	"hexforge/cryptohub/internal/metrics"
	"hexforge/cryptohub/pkg/response"
	"hexforge/cryptohub/web"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	healthHandler *HealthHandler,
	cryptoHandler *CryptoHandler,
	dataHandler *DataHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Metrics(m))

	r.GET("/health", healthHandler.Check)
	r.POST("/crypto", cryptoHandler.Execute)
	r.POST("/data/:key", dataHandler.Store)
	r.GET("/data/:key", dataHandler.Fetch)

	r.GET("/metrics", gin.WrapH(m.Handler()))

	// Frontend: embedded index page plus on-disk assets
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})
	r.Static("/static", "./static")

	// Unrouted paths get the envelope, not gin's default 404
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not Found")
	})

	return r
}
