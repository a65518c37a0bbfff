// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestVisitorTable(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	table := newVisitorTable(rate.Limit(1), 2)

	assert.True(t, table.allow("203.0.113.1", now))
	assert.True(t, table.allow("203.0.113.1", now))
	assert.False(t, table.allow("203.0.113.1", now), "burst exhausted")
	assert.True(t, table.allow("203.0.113.2", now), "buckets are per IP")

	assert.True(t, table.allow("203.0.113.1", now.Add(time.Second)), "one token refilled")

	table.sweep(now.Add(3*time.Second), time.Second)
	assert.Empty(t, table.visitors)
}
