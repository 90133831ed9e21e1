package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stack4devs/stack4devs/internal/adapters/http/handlers"
	"github.com/stack4devs/stack4devs/internal/adapters/http/middleware"
	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds /api/v1 requests when none is configured.
const DefaultRequestTimeout = 10 * time.Second

// RouterConfig carries what the router mounts. Health is optional.
type RouterConfig struct {
	ServiceName string
	Timeout     time.Duration

	Health    *handlers.HealthHandler
	Recommend *app.RecommendService
	Accounts  *app.AccountService
	Favorites *app.FavoritesService
	Settings  *app.SettingsService
	Community *app.CommunityService
}

// SetupRouter installs the middleware chain and every route on engine.
//
// Global middleware, outermost first: recovery, request id, correlation
// id, OpenTelemetry, logging. /api/v1 adds the request timeout, and routes
// that act for the signed-in user add RequireUser.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.Health != nil {
		cfg.Health.RegisterRoutes(engine.Group("/-"))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	api := engine.Group("/api/v1", middleware.Timeout(timeout))
	gate := middleware.RequireUser(cfg.Accounts)

	handlers.NewStackHandler(cfg.Recommend).RegisterRoutes(api)
	handlers.NewAccountHandler(cfg.Accounts).RegisterRoutes(api)
	handlers.NewFavoritesHandler(cfg.Favorites, cfg.Recommend).RegisterRoutes(api, gate)
	handlers.NewSettingsHandler(cfg.Settings).RegisterRoutes(api)
	handlers.NewCaseHandler(cfg.Community).RegisterRoutes(api, gate)
}
