// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
	"github.com/taibuivan/yomira-cms/internal/platform/respond"
)

func TestOK_WritesRawBody(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `["a","b"]`, recorder.Body.String())
}

func TestMessage(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Message(recorder, "Comic deleted successfully")

	assert.JSONEq(t, `{"message":"Comic deleted successfully"}`, recorder.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not_found", apperr.NotFound("Comic"), http.StatusNotFound, "Comic not found"},
		{"bad_request", apperr.BadRequest("Invalid role"), http.StatusBadRequest, "Invalid role"},
		{"internal_with_message", apperr.InternalMessage("Failed to list comics", errors.New("boom")), http.StatusInternalServerError, "Failed to list comics"},
		{"plain_error_hidden", errors.New("pq: secret detail"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body respond.ErrorEnvelope
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.NotContains(t, body.Error, "secret")
		})
	}
}
