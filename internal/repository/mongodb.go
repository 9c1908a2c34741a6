// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollectionCompanies      = "companies"
	CollectionCamps          = "camps"
	CollectionSelections     = "service_selections"
	CollectionTestData       = "test_data"
	CollectionServices       = "services"
	CollectionCostDetails    = "cost_details"
	CollectionServiceCosts   = "service_costs"
	CollectionCostSummaries  = "cost_summaries"
	CollectionCopyPrices     = "copy_prices"
	CollectionCoupons        = "discount_coupons"
	CollectionCompanyDetails = "company_details"
	CollectionUsers          = "users"
	CollectionEstimations    = "estimations"
	CollectionCounters       = "counters"
	CollectionLogs           = "logs"
	CollectionTokens         = "tokens"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
	// ConnectRetries is how many times a failed connect is retried with
	// exponential backoff.
	ConnectRetries int
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
		ConnectRetries:         5,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Logs     *mongo.Collection
	Tokens   *mongo.Collection
	Counters *mongo.Collection
}

// Collection returns the named collection of the database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects to MongoDB, retrying with exponential backoff,
// and makes sure every collection index exists.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetRegistry(NewRegistry()).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	var client *mongo.Client
	connect := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
		defer cancel()

		c, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			return fmt.Errorf("mongo.Connect: %w", err)
		}
		if err := c.Ping(ctx, nil); err != nil {
			_ = c.Disconnect(context.Background())
			return fmt.Errorf("mongo ping: %w", err)
		}
		client = c
		return nil
	}

	retries := cfg.ConnectRetries
	if retries < 0 {
		retries = 0
	}
	err := backoff.RetryNotify(
		connect,
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries)),
		func(err error, wait time.Duration) {
			log.Warn().Err(err).Dur("retry_in", wait).Msg("MongoDB not reachable, retrying")
		},
	)
	if err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:   client,
		Database: db,
		Logs:     db.Collection(CollectionLogs),
		Tokens:   db.Collection(CollectionTokens),
		Counters: db.Collection(CollectionCounters),
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := mongoDB.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	return mongoDB, nil
}

// createIndexes creates the unique and lookup indexes of every collection.
// Unique indexes are required and fail the startup; lookup indexes are best effort.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	unique := []struct {
		collection string
		keys       bson.D
	}{
		{CollectionSelections, bson.D{{Key: "company_id", Value: 1}}},
		{CollectionCostDetails, bson.D{{Key: "company_id", Value: 1}, {Key: "service_name", Value: 1}}},
		{CollectionCoupons, bson.D{{Key: "code", Value: 1}}},
		{CollectionUsers, bson.D{{Key: "username", Value: 1}}},
		{CollectionServiceCosts, bson.D{{Key: "test_type_name", Value: 1}}},
		{CollectionTokens, bson.D{{Key: "token", Value: 1}}},
	}
	for _, idx := range unique {
		model := mongo.IndexModel{Keys: idx.keys, Options: options.Index().SetUnique(true)}
		if _, err := m.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("%s: %w", idx.collection, err)
		}
	}

	lookup := []struct {
		collection string
		keys       bson.D
	}{
		{CollectionCamps, bson.D{{Key: "company_id", Value: 1}}},
		{CollectionTestData, bson.D{{Key: "company_id", Value: 1}, {Key: "package_name", Value: 1}}},
		{CollectionCostSummaries, bson.D{{Key: "company_id", Value: 1}}},
		{CollectionLogs, bson.D{{Key: "request_id", Value: 1}}},
		{CollectionTokens, bson.D{{Key: "user_id", Value: 1}, {Key: "type", Value: 1}}},
	}
	for _, idx := range lookup {
		_, _ = m.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: idx.keys})
	}

	// expires_at holds the absolute expiry, so documents expire exactly then.
	tokenTTLIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	_, _ = m.Tokens.Indexes().CreateOne(ctx, tokenTTLIndex)

	return nil
}

// SetLogsTTL replaces the TTL index of the logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	ttlIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	}
	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
