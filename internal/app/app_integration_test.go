//go:build integration

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/repository"
	"github.com/u4rad/camp-service/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func integrationConfig(t *testing.T) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:       "0",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Storage: config.StorageConfig{
			MediaRoot:      t.TempDir(),
			MaxUploadBytes: 1 << 20,
		},
		Auth: config.AuthConfig{
			Enabled:          true,
			JWTSecretKey:     "app-access",
			JWTRefreshSecret: "app-refresh",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  time.Hour,
			AdminUsername:    "admin",
			AdminPassword:    "s3cret!",
		},
		Database: config.DatabaseConfig{
			URI:                            testutil.GetSharedContainerURI(),
			DatabaseName:                   testutil.SanitizeDBName(t.Name()),
			LogsTTL:                        24 * time.Hour,
			Transactions:                   true,
			ConnectRetries:                 1,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Log: config.LogConfig{Level: "warn"},
	}
}

func TestInitializeApp_Integration(t *testing.T) {
	ctx := context.Background()
	cfg := integrationConfig(t)

	application, err := InitializeApp(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = application.database.DB.Database.Drop(context.Background())
		application.Close()
	})

	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// The seeded admin can log in and reach a protected route.
	body, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "s3cret!"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope struct {
		Data dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	req = httptest.NewRequest(http.MethodGet, "/api/copyprice", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.Token)
	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var prices struct {
		Data []model.CopyPrice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prices))
	require.Len(t, prices.Data, 1)
	assert.Equal(t, HardCopyPriceName, prices.Data[0].Name)
	assert.True(t, prices.Data[0].HardCopyPrice.Equal(model.HardCopyRatePerCase))

	// Stopping the async logger flushes the request log to MongoDB.
	application.router.Close()
	count, err := application.database.DB.Collection(repository.CollectionLogs).CountDocuments(ctx, bson.M{"action_type": "login"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestInitializeApp_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cfg := integrationConfig(t)

	first, err := InitializeApp(ctx, cfg)
	require.NoError(t, err)
	first.Close()

	second, err := InitializeApp(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = second.database.DB.Database.Drop(context.Background())
		second.Close()
	})

	for collection, want := range map[string]int64{
		repository.CollectionUsers:      1,
		repository.CollectionCopyPrices: 1,
	} {
		n, err := second.database.DB.Collection(collection).CountDocuments(ctx, bson.M{})
		require.NoError(t, err)
		assert.Equal(t, want, n, collection)
	}
}

func TestInitializeApp_DatabaseUnreachable(t *testing.T) {
	cfg := integrationConfig(t)
	cfg.Database.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200"
	cfg.Database.ConnectRetries = 0

	_, err := InitializeApp(context.Background(), cfg)

	assert.Error(t, err)
}
