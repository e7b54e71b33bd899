package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/jsontypings/pkg/cache"
	"github.com/matzehuels/jsontypings/pkg/config"
	"github.com/matzehuels/jsontypings/pkg/pipeline"
)

func newTestServer(t *testing.T, mutate func(*config.Settings)) *httptest.Server {
	t.Helper()
	c, err := cache.NewMemoryCache(32)
	require.NoError(t, err)

	s := config.Default()
	if mutate != nil {
		mutate(&s)
	}
	runner := pipeline.NewRunner(c, cache.NewScopedKeyer(cache.NewDefaultKeyer(), "serve:"), nil)
	ts := httptest.NewServer(New(runner, s, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
	health := decode[HealthResponse](t, resp)
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Build.Version)
}

func TestTypingsFromSamples(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{"name": "Issue", "samples": [{"id": 1, "state": "open"}, {"id": 2, "state": "closed"}, {"id": 3, "state": "open"}]}`
	resp := post(t, ts, "/v1/typings", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[pipeline.Result](t, resp)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "export interface Issue {\n"+
		"    id: number;\n"+
		"    state: Issue.State;\n"+
		"}\n"+
		"\n"+
		"export namespace Issue {\n"+
		"    export type State = \"open\"\n"+
		"        | \"closed\";\n"+
		"}\n", result.Output)
	assert.Equal(t, 3, result.Stats.Samples)

	resp = post(t, ts, "/v1/typings", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	again := decode[pipeline.Result](t, resp)
	assert.Equal(t, 1, again.CacheInfo.Hits)
	assert.Equal(t, result.Output, again.Output)
}

func TestTypingsConfigMerge(t *testing.T) {
	ts := newTestServer(t, func(s *config.Settings) {
		s.Indentation = "  "
	})

	body := `{"samples": [{"s": "a"}, {"s": "b"}, {"s": "a"}], "config": {"string_delimiter": "'"}}`
	resp := post(t, ts, "/v1/typings", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[pipeline.Result](t, resp)
	assert.Contains(t, result.Output, "  s: All.S;\n", "server indentation is kept")
	assert.Contains(t, result.Output, "  export type S = 'a'\n    | 'b';\n", "request delimiter wins")
}

func TestTypingsFromDocumentsPerFile(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{
		"per_file": true,
		"documents": [
			{"name": "user.json", "content": "{\"login\": \"octocat\"}"},
			{"name": "repo.yaml", "content": "stars: 3\n"}
		]
	}`
	resp := post(t, ts, "/v1/typings", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[pipeline.Result](t, resp)
	require.Len(t, result.Roots, 2)
	assert.Equal(t, "User", result.Roots[0].Name)
	assert.Equal(t, "Repo", result.Roots[1].Name)
	assert.Contains(t, result.Output, "export interface Repo {\n    stars: number;\n}\n")
}

func TestTypingsErrors(t *testing.T) {
	ts := newTestServer(t, func(s *config.Settings) {
		s.Server.MaxBodyBytes = 256
	})

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed body", `{"samples": [`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown field", `{"sample": []}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"both inputs", `{"samples": [1], "documents": [{"content": "1"}]}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad config", `{"samples": [], "config": {"indentation": "--"}}`, http.StatusBadRequest, "INVALID_CONFIG"},
		{"name too long", `{"name": "` + strings.Repeat("a", 300) + `", "samples": []}`, http.StatusBadRequest, "INVALID_NAME"},
		{"bad query", `{"samples": [], "query": ".["}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad document", `{"documents": [{"name": "x.json", "content": "{"}]}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"family", `{"samples": [], "config": {"strategy": "family"}}`, http.StatusNotImplemented, "NOT_IMPLEMENTED"},
		{"too large", `{"samples": [` + strings.Repeat(`"xxxxxxxxxx",`, 40) + `1]}`, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts, "/v1/typings", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			errResp := decode[ErrorResponse](t, resp)
			assert.Equal(t, tt.code, errResp.Error.Code)
			assert.NotEmpty(t, errResp.Error.Message)
			assert.Equal(t, resp.Header.Get(RequestIDHeader), errResp.RequestID)
		})
	}
}

func TestGraph(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{"samples": [{"tags": ["a"], "id": 1}]}`
	resp := post(t, ts, "/v1/graph", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/vnd.graphviz")
	assert.Equal(t, "miss", resp.Header.Get("X-Cache"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph G {"))

	resp = post(t, ts, "/v1/graph", body)
	assert.Equal(t, "hit", resp.Header.Get("X-Cache"))

	resp = post(t, ts, "/v1/graph", `{"samples": [], "format": "png"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "req-42")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "req-42", resp.Header.Get(RequestIDHeader))
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/v1/typings")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
