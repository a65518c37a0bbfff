// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/yomira-cms/internal/platform/constants"
)

// # Rate Limiting

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorTable holds one token bucket per client IP.
type visitorTable struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func newVisitorTable(limit rate.Limit, burst int) *visitorTable {
	return &visitorTable{visitors: make(map[string]*visitor), limit: limit, burst: burst}
}

// allow takes one token from the bucket of ip, creating the bucket on first use.
func (table *visitorTable) allow(ip string, now time.Time) bool {
	table.mu.Lock()
	defer table.mu.Unlock()

	entry, found := table.visitors[ip]
	if !found {
		entry = &visitor{limiter: rate.NewLimiter(table.limit, table.burst)}
		table.visitors[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// sweep forgets every visitor idle for longer than ttl.
func (table *visitorTable) sweep(now time.Time, ttl time.Duration) {
	table.mu.Lock()
	defer table.mu.Unlock()

	for ip, entry := range table.visitors {
		if now.Sub(entry.lastSeen) > ttl {
			delete(table.visitors, ip)
		}
	}
}

// RateLimit rejects requests with 429 once an IP exceeds its token bucket.
// Idle entries are swept periodically until ctx is cancelled.
func RateLimit(ctx context.Context) func(http.Handler) http.Handler {
	table := newVisitorTable(rate.Limit(constants.DefaultRateLimitRPS), constants.DefaultRateLimitBurst)

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				table.sweep(now, constants.RateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !table.allow(RealIP(request), time.Now()) {
				writeError(writer, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Rate limit exceeded")
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
