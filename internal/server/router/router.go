package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/server/handlers"
)

// Handlers groups the HTTP adapters mounted by New.
type Handlers struct {
	Production *handlers.ProductionHandler
	Catalog    *handlers.CatalogHandler
	Sales      *handlers.SalesHandler
	Reports    *handlers.ReportHandler
	Webhook    *handlers.WebhookHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalog := r.Group("/catalog")
	catalog.GET("", h.Catalog.List)
	catalog.POST("", h.Catalog.Create)
	catalog.PUT("/:id", h.Catalog.Update)
	catalog.DELETE("/:id", h.Catalog.Delete)

	production := r.Group("/production")
	production.GET("", h.Production.List)
	production.POST("", h.Production.Create)
	production.GET("/:id", h.Production.Get)
	production.PUT("/:id", h.Production.Update)
	production.DELETE("/:id", h.Production.Delete)
	production.POST("/:id/toggle-status", h.Production.ToggleStatus)

	sales := r.Group("/sales")
	sales.GET("", h.Sales.List)
	sales.POST("", h.Sales.Create)
	sales.DELETE("/:id", h.Sales.Delete)

	reports := r.Group("/reports")
	reports.GET("/summary", h.Reports.Summary)
	reports.GET("/workers", h.Reports.Workers)
	reports.GET("/workers/:name", h.Reports.Worker)
	reports.GET("/ranking", h.Reports.Ranking)
	reports.GET("/projection", h.Reports.Projection)
	reports.POST("/insights", h.Reports.Insights)
	reports.POST("/export", h.Reports.Export)

	r.GET("/webhook", h.Webhook.Verify)
	r.POST("/webhook", h.Webhook.Receive)
	r.POST("/send-message", h.Webhook.SendMessage)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
