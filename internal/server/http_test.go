package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kolsense/kolsense/internal/conf"
	"github.com/kolsense/kolsense/internal/mcp"
	"github.com/kolsense/kolsense/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Logger {
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "console"})
	require.NoError(t, err)
	return log
}

func newTestServer(t *testing.T, rpm int, providerReady bool) *HTTPServer {
	log := testLogger(t)

	actions := mcp.NewRouter(log)
	actions.Register("kol.echo", func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return params, nil
	})

	cfg := &conf.Config{}
	cfg.Server.Port = 5000
	cfg.Server.RateLimitPerMinute = rpm

	return NewHTTPServer(cfg, log, actions, providerReady)
}

func doRequest(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, 0, true)

	w := doRequest(srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, Version, body["version"])
	assert.Equal(t, true, body["masa_api_client"])
}

func TestHealth_ProviderNotConfigured(t *testing.T) {
	srv := newTestServer(t, 0, false)

	w := doRequest(srv, http.MethodGet, "/health", "")
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["masa_api_client"])
}

func TestPing(t *testing.T) {
	srv := newTestServer(t, 0, true)

	w := doRequest(srv, http.MethodGet, "/api/mcp/ping", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestQuery_RoutedAction(t *testing.T) {
	srv := newTestServer(t, 0, true)

	w := doRequest(srv, http.MethodPost, "/api/mcp/query",
		`{"id": "req-1", "action": "kol.echo", "params": {"query": "rust"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp mcp.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-1", resp.ID)
	assert.Nil(t, resp.Error)
	result := resp.Result.(map[string]interface{})
	assert.Equal(t, "rust", result["query"])
}

func TestQuery_UnsupportedAction(t *testing.T) {
	srv := newTestServer(t, 0, true)

	w := doRequest(srv, http.MethodPost, "/api/mcp/query", `{"action": "kol.nope"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp mcp.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNSUPPORTED_ACTION", resp.Error.Code)
	assert.NotEmpty(t, resp.ID)
}

func TestQuery_NonJSONBody(t *testing.T) {
	srv := newTestServer(t, 0, true)

	w := doRequest(srv, http.MethodPost, "/api/mcp/query", "not json at all")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Request body must be JSON", body["error"])
}

func TestRateLimit(t *testing.T) {
	// 10/min leaves a burst of one, so the second immediate request trips.
	srv := newTestServer(t, 10, true)

	first := doRequest(srv, http.MethodGet, "/api/mcp/ping", "")
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(srv, http.MethodGet, "/api/mcp/ping", "")
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "Too many requests", body["error"])

	// Health probes bypass the limiter.
	health := doRequest(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
}
