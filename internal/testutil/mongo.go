//go:build integration

// Package testutil runs the MongoDB container shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const (
	// MongoImage is the server image used by integration tests.
	MongoImage = "mongo:7.0"
	// ReplicaSetName names the single-node replica set; transactions need one.
	ReplicaSetName = "rs0"
)

var (
	shared    *mongodb.MongoDBContainer
	sharedURI string
	dbSeq     atomic.Int64
)

// SetupTestMainWithMongoDB starts one container for the package, runs the
// tests and terminates it. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	container, err := mongodb.Run(ctx, MongoImage, mongodb.WithReplicaSet(ReplicaSetName))
	if err != nil {
		panic(fmt.Errorf("start MongoDB container: %w", err))
	}
	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		panic(fmt.Errorf("MongoDB connection string: %w", err))
	}
	shared, sharedURI = container, uri

	code := m.Run()

	if err := shared.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "terminate MongoDB container: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the package container.
func GetSharedContainerURI() string {
	if shared == nil {
		panic("testutil: MongoDB container not started, call SetupTestMainWithMongoDB from TestMain")
	}
	return sharedURI
}

// SanitizeDBName derives a database name from a test name that is valid for
// MongoDB and unique within the test binary.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\. "$*<>:|?`, r) {
			return '_'
		}
		return r
	}, testName)
	if len(name) > 48 {
		name = name[:48]
	}
	return fmt.Sprintf("%s_%d", name, dbSeq.Add(1))
}
