// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-cms/internal/api"
	"github.com/taibuivan/yomira-cms/internal/core/comic"
	"github.com/taibuivan/yomira-cms/internal/platform/config"
	"github.com/taibuivan/yomira-cms/internal/platform/sec"
	"github.com/taibuivan/yomira-cms/internal/social/comment"
	"github.com/taibuivan/yomira-cms/internal/users/account"
)

func newTestServer(t *testing.T, checkStore func(context.Context) error) *httptest.Server {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "development"}

	comics := comic.NewService(comic.NewMemoryRepository())
	users := account.NewService(account.NewMemoryRepository(), sec.PlainPasswords{})
	comments := comment.NewService(comment.NewMemoryRepository(), comics, users)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		StoreName:  config.DriverMemory,
		CheckStore: checkStore,
	}, logger)

	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Comic:     comic.NewHandler(comics),
		User:      account.NewHandler(users),
		Comment:   comment.NewHandler(comments),
	})

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)
	return httpServer
}

func request(t *testing.T, method, url, callerID, body string) (int, []byte, http.Header) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if callerID != "" {
		req.Header.Set("userId", callerID)
	}

	response, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, raw, response.Header
}

func TestServer_ComicLifecycle(t *testing.T) {
	server := newTestServer(t, nil)

	status, body, header := request(t, http.MethodPost, server.URL+"/comics", "",
		`{"title":"A","description":"d","author":"x","year":2020,"coverImage":"c","images":["i1"]}`)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, header.Get("X-Request-ID"))

	var created comic.Comic
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.ID)

	status, body, _ = request(t, http.MethodGet, server.URL+"/comics/"+created.ID, "", "")
	require.Equal(t, http.StatusOK, status)
	var fetched comic.Comic
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created, fetched)

	status, body, _ = request(t, http.MethodPut, server.URL+"/comics/"+created.ID, "", `{"title":"B"}`)
	require.Equal(t, http.StatusOK, status)
	var updated comic.Comic
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "B", updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Images, updated.Images)

	status, body, _ = request(t, http.MethodGet, server.URL+"/comics", "", "")
	require.Equal(t, http.StatusOK, status)
	var all []comic.Comic
	require.NoError(t, json.Unmarshal(body, &all))
	assert.Len(t, all, 1)

	status, body, _ = request(t, http.MethodDelete, server.URL+"/comics/"+created.ID, "", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Comic deleted successfully"}`, string(body))

	status, body, _ = request(t, http.MethodGet, server.URL+"/comics/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Comic not found","code":"NOT_FOUND"}`, string(body))
}

func TestServer_CommentsThroughCallerHeader(t *testing.T) {
	server := newTestServer(t, nil)

	_, body, _ := request(t, http.MethodPost, server.URL+"/comics", "",
		`{"title":"A","description":"d","author":"x","year":2020,"coverImage":"c","images":["i1"]}`)
	var created comic.Comic
	require.NoError(t, json.Unmarshal(body, &created))

	register := func(path, username string) string {
		_, body, _ := request(t, http.MethodPost, server.URL+"/users/"+path, "",
			`{"username":"`+username+`","password":"p","email":"`+username+`@x.io","fullname":"F"}`)
		var registration struct {
			SavedUser struct {
				ID string `json:"_id"`
			} `json:"savedUser"`
		}
		require.NoError(t, json.Unmarshal(body, &registration))
		return registration.SavedUser.ID
	}
	userID := register("user", "reader")
	adminID := register("admin", "boss")

	for _, author := range []string{userID, adminID} {
		status, _, _ := request(t, http.MethodPost, server.URL+"/comments", "",
			`{"comicId":"`+created.ID+`","userId":"`+author+`","content":"hi"}`)
		require.Equal(t, http.StatusOK, status)
	}

	tests := []struct {
		name   string
		caller string
		want   int
	}{
		{"user_sees_own", userID, 1},
		{"admin_sees_all", adminID, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := request(t, http.MethodGet, server.URL+"/comments/"+created.ID, tt.caller, "")
			require.Equal(t, http.StatusOK, status)
			var comments []comment.Comment
			require.NoError(t, json.Unmarshal(body, &comments))
			assert.Len(t, comments, tt.want)
		})
	}

	status, _, _ := request(t, http.MethodGet, server.URL+"/comments/"+created.ID, "", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestServer_HealthEndpoints(t *testing.T) {
	server := newTestServer(t, func(context.Context) error { return nil })

	status, body, _ := request(t, http.MethodGet, server.URL+"/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	status, body, _ = request(t, http.MethodGet, server.URL+"/ready", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ready","checks":[{"name":"memory","ok":true}]}`, string(body))

	status, body, _ = request(t, http.MethodGet, server.URL+"/metrics", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestServer_ReadinessDegraded(t *testing.T) {
	server := newTestServer(t, func(context.Context) error { return errors.New("ping failed") })

	status, body, _ := request(t, http.MethodGet, server.URL+"/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, string(body), `"degraded"`)
}
