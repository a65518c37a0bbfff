// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/yomira-cms/internal/platform/constants"
)

// # Cross-Origin Resource Sharing

// AppConfig is the part of the configuration the CORS policy reads.
type AppConfig interface {
	IsDevelopment() bool
	OriginSuffix() string
}

const (
	corsAllowMethods  = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders  = "Accept, Content-Type, Content-Length, X-Request-ID, " + constants.HeaderCallerID
	corsExposeHeaders = "Content-Length, X-Request-ID"
	corsMaxAge        = "300"
)

// originAllowed accepts any origin in development and only origins ending in
// the configured suffix otherwise.
func originAllowed(cfg AppConfig, origin string) bool {
	if cfg.IsDevelopment() {
		return true
	}
	suffix := cfg.OriginSuffix()
	return suffix != "" && strings.HasSuffix(origin, suffix)
}

// CORS writes the Access-Control headers for allowed origins and answers
// pre-flight requests with 204.
func CORS(cfg AppConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			if originAllowed(cfg, origin) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", corsAllowMethods)
				header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				header.Set("Access-Control-Expose-Headers", corsExposeHeaders)
				header.Set("Access-Control-Max-Age", corsMaxAge)
				header.Add("Vary", constants.HeaderOrigin)
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
