// Package api serves snapshot parsing over HTTP.
package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mj1618/eve-ui-reader/internal/uiparse"
)

// DefaultBodyLimit caps request bodies. Large fleets produce snapshots of
// a few megabytes.
const DefaultBodyLimit = "64M"

// Dependencies holds all handler dependencies
type Dependencies struct {
	Parse     uiparse.Config
	Version   string
	BodyLimit string
}

// Handlers holds all handler instances
type Handlers struct {
	Health   *HealthHandler
	Snapshot *SnapshotHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(deps.Version),
		Snapshot: NewSnapshotHandler(deps.Parse),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	e.GET("/health", handlers.Health.HandleHealth)

	g := e.Group("/api")
	g.POST("/parse", handlers.Snapshot.HandleParse)
	g.POST("/components", handlers.Snapshot.HandleComponents)
	g.POST("/find", handlers.Snapshot.HandleFind)
}

// NewServer builds an Echo instance with middleware, error handling and
// all routes.
func NewServer(deps *Dependencies) *echo.Echo {
	limit := deps.BodyLimit
	if limit == "" {
		limit = DefaultBodyLimit
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(limit))
	e.Use(requestLogger())

	RegisterRoutes(e, NewHandlers(deps))
	return e
}
