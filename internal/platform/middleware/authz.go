// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/yomira-cms/internal/platform/constants"
	"github.com/taibuivan/yomira-cms/internal/platform/ctxutil"
)

// CallerIdentity copies the userId request header into the request context.
//
// # Trust Model
//
// The header is a plain, caller-supplied user id. No credential is checked:
// whoever sends an admin's id is treated as that admin. Handlers that need a
// caller read it with [requestutil.RequiredCallerID] and resolve the role
// from the store themselves.
//
// # Flow
//  1. Read the userId header.
//  2. If absent, the request proceeds without a caller.
//  3. If present, store the trimmed value via [ctxutil.WithCallerID].
func CallerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		callerID := strings.TrimSpace(request.Header.Get(constants.HeaderCallerID))
		if callerID == "" {
			next.ServeHTTP(writer, request)
			return
		}

		ctx := ctxutil.WithCallerID(request.Context(), callerID)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
