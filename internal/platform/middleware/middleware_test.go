// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira-cms/internal/platform/ctxutil"
	"github.com/taibuivan/yomira-cms/internal/platform/middleware"
)

type corsConfig struct {
	development bool
}

func (c corsConfig) IsDevelopment() bool  { return c.development }
func (c corsConfig) OriginSuffix() string { return "yomira.app" }

/*
TestRequestID verifies generation and propagation of the correlation id.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Request-ID", "req-42")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "req-42", seen)
	})
}

/*
TestCallerIdentity verifies the userId header reaches the context untouched.
*/
func TestCallerIdentity(t *testing.T) {
	var seen string
	handler := middleware.CallerIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetCallerID(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/comments/abc", nil)
	request.Header.Set("userId", " 0190a5c3-7b2e-7c1a-9f3d-2b4c6d8e0f12 ")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "0190a5c3-7b2e-7c1a-9f3d-2b4c6d8e0f12", seen)

	seen = "unchanged"
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, seen)
}

/*
TestPanicRecovery ensures a panicking handler yields a JSON 500.
*/
func TestPanicRecovery(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	handler := middleware.PanicRecovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","error":"An unexpected error occurred"}`, recorder.Body.String())
}

/*
TestRateLimit exhausts the burst for a single IP.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	limited := false
	for range 1000 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", "203.0.113.7")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		if recorder.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}

	assert.True(t, limited)
}

/*
TestCORS checks development and production origin policies.
*/
func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name        string
		development bool
		origin      string
		allowed     bool
	}{
		{"dev_any_origin", true, "http://localhost:5173", true},
		{"prod_matching_suffix", false, "https://reader.yomira.app", true},
		{"prod_foreign_origin", false, "https://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(corsConfig{development: tt.development})(next)

			request := httptest.NewRequest(http.MethodOptions, "/comics", nil)
			request.Header.Set("Origin", tt.origin)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "198.51.100.2:5555"
	assert.Equal(t, "198.51.100.2", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "192.0.2.1, 10.0.0.1")
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "192.0.2.9")
	assert.Equal(t, "192.0.2.9", middleware.RealIP(request))
}
