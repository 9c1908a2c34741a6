package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner runs multi-document writes atomically.
// With transactions disabled fn runs directly on ctx.
type TxRunner struct {
	client  *mongo.Client
	enabled bool
}

// NewTxRunner creates a TxRunner. Transactions need a replica set.
func NewTxRunner(db *MongoDB, enabled bool) *TxRunner {
	return &TxRunner{client: db.Client, enabled: enabled}
}

// WithTransaction runs fn inside a session transaction. Store calls made
// with the ctx passed to fn join the transaction.
func (t *TxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t == nil || !t.enabled {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
