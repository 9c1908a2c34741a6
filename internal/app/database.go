package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/metrics"
	"github.com/u4rad/camp-service/internal/repository"
	"github.com/u4rad/camp-service/internal/service"
)

// DatabaseComponents holds the MongoDB connection and the breakers guarding it.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	Tx             *repository.TxRunner
	StoreBreaker   *circuitbreaker.CircuitBreaker
	LogsBreaker    *circuitbreaker.CircuitBreaker
	LoggingService service.LoggingService
}

// InitializeDatabase connects to MongoDB, retrying while it is unreachable,
// and sets up the logs TTL index and the circuit breakers. The service does
// not start without a database.
func InitializeDatabase(ctx context.Context, cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	mongoCfg := repository.DefaultMongoConfig()
	mongoCfg.ConnectRetries = cfg.ConnectRetries

	db, err := repository.NewMongoDBWithConfig(cfg.URI, cfg.DatabaseName, mongoCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	log.Info().Str("database", cfg.DatabaseName).Bool("transactions", cfg.Transactions).Msg("Connected to MongoDB")

	if cfg.LogsTTL > 0 {
		if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
			log.Warn().Err(err).Dur("ttl", cfg.LogsTTL).Msg("Failed to set logs TTL index")
		}
	}

	storeCB := repository.NewStoreBreaker(breakerConfig(cfg, "mongodb"))
	logsCB := circuitbreaker.New(breakerConfig(cfg, "mongodb_logs"))

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:             db,
		Tx:             repository.NewTxRunner(db, cfg.Transactions),
		StoreBreaker:   storeCB,
		LogsBreaker:    logsCB,
		LoggingService: service.NewLoggingService(logsRepo),
	}, nil
}

func breakerConfig(cfg config.DatabaseConfig, name string) circuitbreaker.Config {
	return circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange:    metrics.ObserveBreaker,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
