// Package app wires configuration, storage, services and the HTTP layer
// into a runnable camp service.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/logger"
)

const closeTimeout = 10 * time.Second

// App is the assembled service.
type App struct {
	Router *gin.Engine
	Server *Server

	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeLogger configures the global logger.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}

// InitializeApp connects to the database, seeds the defaults and builds the
// router and server. Release the resources with Close.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	db, err := InitializeDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	services, err := InitializeServices(cfg, db)
	if err != nil {
		_ = db.Close(context.Background())
		return nil, err
	}

	if err := SeedDefaults(ctx, cfg.Auth, services.Users, services.CopyPrices); err != nil {
		_ = db.Close(context.Background())
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	router := InitializeRouter(cfg, db, services)

	return &App{
		Router:   router.Router,
		Server:   NewServer(router.Router, cfg.Server.Port, DefaultServerConfig()),
		database: db,
		router:   router,
	}, nil
}

// Run serves until ctx is cancelled and then releases every resource.
func (a *App) Run(ctx context.Context) error {
	err := a.Server.Run(ctx)
	a.Close()
	return err
}

// Close stops the background workers and disconnects from MongoDB. The
// async logger is stopped first so queued entries still reach the database.
func (a *App) Close() {
	if a.router != nil {
		a.router.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := a.database.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
