// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
	"github.com/taibuivan/yomira-cms/internal/platform/ctxutil"
	"github.com/taibuivan/yomira-cms/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
CallerID returns the user id declared by the caller through the userId header.

The value is whatever the client sent; it is not authenticated.
*/
func CallerID(request *http.Request) string {
	return ctxutil.GetCallerID(request.Context())
}

/*
RequiredCallerID ensures the caller declared a user id.

Returns:
  - string: The caller's user id
  - error: apperr.BadRequest if the header is absent
*/
func RequiredCallerID(request *http.Request) (string, error) {
	callerID := CallerID(request)
	if callerID == "" {
		return "", apperr.BadRequest("Missing userId header")
	}
	return callerID, nil
}
