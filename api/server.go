package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newsviewer/format"
	"newsviewer/rssfeeds"
)

// Deps are the services the routes need
type Deps struct {
	Store       *rssfeeds.Store
	Formatter   *format.Formatter
	Placeholder string
	Logger      *zap.Logger
	// Background is the lifetime of asynchronous refreshes
	Background context.Context
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Background == nil {
		deps.Background = context.Background()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(deps.Logger))

	// Browsers fetch the articles endpoint cross-origin
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	// Register resource routers
	RegisterHealthRoutes(r)
	RegisterArticleRoutes(r, deps)
	RegisterPreviewRoutes(r, deps)
	return r
}

// requestLogger logs one line per request
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
