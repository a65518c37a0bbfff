// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mongo provides a managed client for the document store backend.

The document backend keeps the original three-collection layout
("comic", "user", "comment") with ObjectID primary keys.

Core Responsibilities:

  - Connection: Parses the URI, tunes the pool, and validates connectivity at startup.
  - Health: Exposes Ping for the readiness probe.
  - Identity: Converts between domain string ids and ObjectIDs.
*/
package mongo

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Opinionated default timeouts for MongoDB operations.
const (
	connectTimeout         = 5 * time.Second
	serverSelectionTimeout = 5 * time.Second
	pingTimeout            = 2 * time.Second
	maxPoolSize            = 20
	minPoolSize            = 2
)

// NewClient connects to MongoDB and returns a ready-to-use database handle.
//
// # Parameters
//   - context: Context for the initial connection and ping.
//   - uri: MongoDB connection string.
//   - database: Database name holding the collections.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, uri, database string, logger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize)

	client, err := mongo.Connect(context, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo: failed to connect: %w", err)
	}

	// Validate connectivity immediately at startup.
	if err := Ping(context, client); err != nil {
		_ = client.Disconnect(context)
		return nil, nil, err
	}

	logger.Info("mongo client connected",
		slog.String("database", database),
		slog.Int("max_pool_size", maxPoolSize),
	)

	return client, client.Database(database), nil
}

// Ping verifies that the MongoDB client can reach the primary.
func Ping(context stdctx.Context, client *mongo.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: ping failed: %w", err)
	}

	return nil
}

// ObjectID parses a hex id. ok is false for malformed input, which callers
// treat exactly like an id that matches nothing.
func ObjectID(id string) (oid primitive.ObjectID, ok bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
