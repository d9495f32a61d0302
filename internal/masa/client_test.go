package masa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kolsense/kolsense/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Logger {
	log, err := logger.New(&logger.Config{
		Level:  "error",
		Format: "json",
		Output: "console",
	})
	require.NoError(t, err)
	return log
}

func newTestClient(t *testing.T, baseURL string) *Client {
	cfg := &Config{
		BaseURL:         baseURL,
		APIKey:          "test-key",
		Timeout:         5 * time.Second,
		PollInterval:    time.Millisecond,
		MaxPollAttempts: 30,
	}

	client, err := New(cfg, testLogger(t))
	require.NoError(t, err)
	return client
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  &Config{BaseURL: "https://data.example.com/api", APIKey: "key"},
			wantErr: false,
		},
		{
			name:    "missing base url",
			config:  &Config{APIKey: "key"},
			wantErr: true,
		},
		{
			name:    "missing api key",
			config:  &Config{BaseURL: "https://data.example.com/api"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 2*time.Second, tt.config.PollInterval)
				assert.Equal(t, 30, tt.config.MaxPollAttempts)
				assert.Equal(t, "twitter-scraper", tt.config.SourceType)
			}
		})
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	cfg := &Config{BaseURL: "https://data.example.com/api/", APIKey: "key"}
	client, err := New(cfg, testLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "https://data.example.com/api", client.config.BaseURL)
}

// liveServer stubs the three live-search endpoints. The status endpoint
// plays back the given status sequence, then repeats the last entry.
type liveServer struct {
	*httptest.Server
	statuses     []statusResponse
	statusCalls  int
	submitCalls  int
	resultCalls  int
	submitBody   map[string]interface{}
	authHeaders  []string
	resultsJSON  string
}

func newLiveServer(t *testing.T, statuses []statusResponse, resultsJSON string) *liveServer {
	s := &liveServer{statuses: statuses, resultsJSON: resultsJSON}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/search/live/twitter", func(w http.ResponseWriter, r *http.Request) {
		s.submitCalls++
		s.authHeaders = append(s.authHeaders, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&s.submitBody))
		json.NewEncoder(w).Encode(map[string]string{"uuid": "job-123"})
	})
	mux.HandleFunc("GET /v1/search/live/twitter/status/job-123", func(w http.ResponseWriter, r *http.Request) {
		idx := s.statusCalls
		if idx >= len(s.statuses) {
			idx = len(s.statuses) - 1
		}
		s.statusCalls++
		json.NewEncoder(w).Encode(s.statuses[idx])
	})
	mux.HandleFunc("GET /v1/search/live/twitter/result/job-123", func(w http.ResponseWriter, r *http.Request) {
		s.resultCalls++
		w.Write([]byte(s.resultsJSON))
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func TestLiveSearch_PollsUntilDone(t *testing.T) {
	server := newLiveServer(t, []statusResponse{
		{Status: "pending"},
		{Status: "pending"},
		{Status: "done"},
	}, `[{"Content": "first post"}, {"Content": "second post"}]`)

	client := newTestClient(t, server.URL)

	items, err := client.LiveSearch(context.Background(), "golang", "", 10)
	require.NoError(t, err)

	// Two pending rounds, one done round, then a single result fetch.
	assert.Equal(t, 3, server.statusCalls)
	assert.Equal(t, 1, server.resultCalls)
	require.Len(t, items, 2)

	text, ok := items[0].Content()
	assert.True(t, ok)
	assert.Equal(t, "first post", text)
}

func TestLiveSearch_SubmitPayload(t *testing.T) {
	server := newLiveServer(t, []statusResponse{{Status: "done"}}, `[]`)
	client := newTestClient(t, server.URL)

	_, err := client.LiveSearch(context.Background(), "golang", "", 25)
	require.NoError(t, err)

	assert.Equal(t, "twitter-scraper", server.submitBody["type"])
	args := server.submitBody["arguments"].(map[string]interface{})
	assert.Equal(t, "searchbyquery", args["type"])
	assert.Equal(t, "golang", args["query"])
	assert.Equal(t, float64(25), args["max_results"])

	require.NotEmpty(t, server.authHeaders)
	assert.Equal(t, "Bearer test-key", server.authHeaders[0])
}

func TestLiveSearch_JobFailed(t *testing.T) {
	server := newLiveServer(t, []statusResponse{
		{Status: "failed", Error: "rate limited"},
	}, `[]`)
	client := newTestClient(t, server.URL)

	_, err := client.LiveSearch(context.Background(), "golang", "", 10)
	require.Error(t, err)

	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Equal(t, "rate limited", jobErr.Message)
	assert.Equal(t, "job-123", jobErr.ID)

	// Failure is terminal: no further polls, no result fetch.
	assert.Equal(t, 1, server.statusCalls)
	assert.Equal(t, 0, server.resultCalls)
}

func TestLiveSearch_Timeout(t *testing.T) {
	server := newLiveServer(t, []statusResponse{{Status: "pending"}}, `[]`)
	client := newTestClient(t, server.URL)

	_, err := client.LiveSearch(context.Background(), "golang", "", 10)
	require.ErrorIs(t, err, ErrJobTimeout)

	// The full retry budget is spent and the result endpoint is never hit.
	assert.Equal(t, 30, server.statusCalls)
	assert.Equal(t, 0, server.resultCalls)
}

func TestLiveSearch_NoJobID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.LiveSearch(context.Background(), "golang", "", 10)
	require.ErrorIs(t, err, ErrNoJobID)
}

func TestLiveSearch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.LiveSearch(context.Background(), "golang", "", 10)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusBadGateway, provErr.StatusCode)
}

func TestLiveSearch_ContextCancelled(t *testing.T) {
	server := newLiveServer(t, []statusResponse{{Status: "pending"}}, `[]`)
	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.LiveSearch(ctx, "golang", "", 10)
	require.Error(t, err)
}

func TestIndexedSearch_Payload(t *testing.T) {
	var body map[string]interface{}
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`[{"Content": "indexed post"}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	items, err := client.IndexedSearch(context.Background(), IndexedRequest{
		Query:      "ai agents",
		MaxResults: 10,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "/v1/search/similarity/twitter", path)
	assert.Equal(t, "ai agents", body["query"])
	assert.Equal(t, float64(10), body["max_results"])

	// No keyword filter when keywords are empty.
	_, hasKeywords := body["keywords"]
	assert.False(t, hasKeywords)
	_, hasOperator := body["keyword_operator"]
	assert.False(t, hasOperator)
}

func TestIndexedSearch_KeywordFilter(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.IndexedSearch(context.Background(), IndexedRequest{
		Query:      "ai",
		Keywords:   []string{"@someuser", "agents"},
		MaxResults: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"@someuser", "agents"}, body["keywords"])
	assert.Equal(t, "and", body["keyword_operator"])
}

func TestHybridSearch_Payload(t *testing.T) {
	var body map[string]interface{}
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.HybridSearch(context.Background(), HybridRequest{
		SimilarityQuery:  "ai",
		TextQuery:        "ai agents",
		SimilarityWeight: 0.7,
		TextWeight:       0.3,
		MaxResults:       10,
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/search/hybrid/twitter", path)

	sim := body["similarity_query"].(map[string]interface{})
	assert.Equal(t, "ai", sim["query"])
	assert.Equal(t, 0.7, sim["weight"])

	text := body["text_query"].(map[string]interface{})
	assert.Equal(t, "ai agents", text["query"])
	assert.Equal(t, 0.3, text["weight"])
}

func TestItem_Content(t *testing.T) {
	var items []Item
	require.NoError(t, json.Unmarshal([]byte(`[{"Content": "hello", "ID": "1"}, {"ID": "2"}, {"Content": ""}]`), &items))

	text, ok := items[0].Content()
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	_, ok = items[1].Content()
	assert.False(t, ok)

	// Present-but-empty Content still counts as present.
	text, ok = items[2].Content()
	assert.True(t, ok)
	assert.Equal(t, "", text)

	assert.Equal(t, "1", items[0].Field("ID").String())
}
