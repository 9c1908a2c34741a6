package app

import (
	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/http"
	"github.com/u4rad/camp-service/internal/middleware"
)

// RouterComponents holds the router and the background workers it uses.
// The workers are stopped by Close.
type RouterComponents struct {
	Router      *gin.Engine
	AsyncLogger *middleware.AsyncLogger
	RateLimiter *middleware.RateLimiter
}

// InitializeRouter builds the HTTP router. Request and audit entries are
// persisted through the async logger; readiness covers the MongoDB ping
// and both circuit breakers.
func InitializeRouter(cfg config.Config, db *DatabaseComponents, services *ServiceComponents) *RouterComponents {
	health := http.NewHealthHandler()

	var asyncLogger *middleware.AsyncLogger
	if db != nil {
		health.RegisterChecker("mongodb", http.HealthCheckerFunc(db.DB.HealthCheck))
		health.RegisterCircuitBreaker(db.StoreBreaker)
		health.RegisterCircuitBreaker(db.LogsBreaker)
		asyncLogger = middleware.NewAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	routerCfg := http.RouterConfig{
		Health:         health,
		RateLimiter:    limiter,
		EnableAuth:     cfg.Auth.Enabled,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
	if asyncLogger != nil {
		routerCfg.LogSink = asyncLogger
	}
	if services != nil {
		routerCfg.Services = services.API
	}

	return &RouterComponents{
		Router:      http.NewRouter(routerCfg),
		AsyncLogger: asyncLogger,
		RateLimiter: limiter,
	}
}

// Close stops the async logger, flushing queued entries, and the rate limiter.
func (r *RouterComponents) Close() {
	if r.AsyncLogger != nil {
		r.AsyncLogger.Stop()
	}
	if r.RateLimiter != nil {
		r.RateLimiter.Stop()
	}
}
