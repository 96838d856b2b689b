package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ordertrack/internal/server/http/handlers"
	"github.com/polkiloo/ordertrack/internal/server/http/middleware"
)

const (
	LookupPath      = "/lookup"
	LookupAliasPath = "/api/orders/lookup"
	NotifyPath      = "/notify"
	NotifyAliasPath = "/api/email-notifications"
	HealthPath      = "/healthz"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TrackingFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(handlers.MethodNotAllowed)

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	lookupHandler := handlers.NewLookupHandler(facade, logger)
	notifyHandler := handlers.NewNotifyHandler(facade, logger)

	for _, path := range []string{LookupPath, LookupAliasPath} {
		engine.POST(path, lookupHandler.Lookup)
		engine.OPTIONS(path, handlers.Preflight)
	}
	for _, path := range []string{NotifyPath, NotifyAliasPath} {
		engine.POST(path, notifyHandler.Notify)
		engine.OPTIONS(path, handlers.Preflight)
	}
	engine.GET(HealthPath, handlers.Health)
	engine.HEAD(HealthPath, func(c *gin.Context) { c.Status(http.StatusOK) })

	return engine
}
