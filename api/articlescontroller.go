package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newsviewer/rssfeeds"
)

// RegisterArticleRoutes registers the articles endpoint and its refresh trigger
func RegisterArticleRoutes(r *gin.Engine, deps Deps) {
	g := r.Group("/api/articles")
	g.GET("", handleGetArticles(deps))
	g.POST("/refresh", handleRefresh(deps))
}

// handleGetArticles serves the current snapshot
func handleGetArticles(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Store.Snapshot())
	}
}

// handleRefresh rebuilds the snapshot asynchronously and returns 202 Accepted immediately
func handleRefresh(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		go func() {
			err := deps.Store.Refresh(deps.Background)
			switch {
			case errors.Is(err, rssfeeds.ErrRefreshInProgress):
				deps.Logger.Info("refresh already running")
			case err != nil:
				deps.Logger.Error("refresh failed", zap.Error(err))
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
	}
}
