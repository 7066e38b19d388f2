package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newsviewer/format"
	"newsviewer/viewer"
	"newsviewer/viewer/htmlsurface"
)

const previewTitle = "Noticias"

// RegisterPreviewRoutes registers the server-side rendering of one page view
func RegisterPreviewRoutes(r *gin.Engine, deps Deps) {
	r.GET("/preview", handlePreview(deps))
}

// handlePreview runs a page view against the in-process snapshot.
// GET /preview?fragment=article-N
func handlePreview(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Formatter == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "preview is not configured"})
			return
		}

		doc := htmlsurface.New(previewTitle, deps.Formatter.Catalog().Text(format.MsgBack))
		app, err := viewer.NewApp(viewer.Options{
			Source:      deps.Store,
			Surface:     doc,
			Formatter:   deps.Formatter,
			Location:    viewer.NewLocation(c.Query("fragment")),
			Placeholder: deps.Placeholder,
			Logger:      deps.Logger,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer app.Close()

		app.Start(c.Request.Context())

		var buf bytes.Buffer
		if err := doc.Render(&buf); err != nil {
			deps.Logger.Error("failed to render preview", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
			return
		}
		c.Header("X-Fragment", app.Location().Fragment())
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}
