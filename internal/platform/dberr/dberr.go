// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Both supported drivers are covered: pgx (PostgreSQL) and the official MongoDB
// driver. Each reports "no matching record" through its own sentinel; callers
// only ever see the domain's NotFound error.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// Wrap inspects a database error and classifies it.
//
//   - nil stays nil.
//   - A "no rows" / "no documents" sentinel becomes notFound.
//   - Anything else is annotated with action and returned for the service
//     layer to turn into a 500.
func Wrap(err error, action string, notFound error) error {
	if err == nil {
		return nil
	}

	if IsNoRecord(err) {
		return notFound
	}

	return fmt.Errorf("%s: %w", action, err)
}

// IsNoRecord reports whether err is a driver's "nothing matched" sentinel.
func IsNoRecord(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, mongo.ErrNoDocuments)
}
