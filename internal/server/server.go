// Package server exposes the portfolio page over HTTP with gin.
package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sudhirshivaram/portfolio/internal/portfolio"
)

const healthPath = "/healthz"

// New builds the gin engine. Every GET / composes and renders the page from
// scratch; nothing is cached between requests.
func New(renderer *portfolio.Renderer, content portfolio.Content, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(logger))

	// Home page route
	r.GET("/", noStore(), func(c *gin.Context) {
		var buf bytes.Buffer
		if err := renderer.RenderContent(&buf, content); err != nil {
			logger.Error("render page failed",
				zap.Error(err),
				zap.String("request_id", c.GetString("request_id")),
			)
			c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	})

	r.GET(healthPath, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
