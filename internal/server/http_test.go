package server

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluentcrm-mcp/internal/i18n"
)

const initializeBody = `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test-client","version":"0.0.1"}}}`

const initializedNotification = `{"jsonrpc":"2.0","method":"notifications/initialized"}`

func newTestHTTP(t *testing.T, cfg HTTPConfig) (*HTTPServer, *httptest.Server) {
	t.Helper()
	tr, _ := i18n.New("en")
	h := NewHTTP(cfg, tr, testLogger())
	ts := httptest.NewServer(h.Router())
	t.Cleanup(ts.Close)
	return h, ts
}

func doMCP(t *testing.T, ts *httptest.Server, method, body string, headers map[string]string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+"/mcp", rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func TestHealthBypassesAuth(t *testing.T) {
	_, ts := newTestHTTP(t, HTTPConfig{AuthToken: "sekret", APIURL: "http://crm.invalid"})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok","server":"fluentcrm-mcp"}`, string(body))
}

func TestBearerAuth(t *testing.T) {
	_, ts := newTestHTTP(t, HTTPConfig{AuthToken: "sekret", APIURL: "http://crm.invalid"})

	t.Run("missing token", func(t *testing.T) {
		resp := doMCP(t, ts, http.MethodPost, initializeBody, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
	t.Run("wrong token", func(t *testing.T) {
		resp := doMCP(t, ts, http.MethodPost, initializeBody,
			map[string]string{"Authorization": "Bearer nope"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
	t.Run("correct token", func(t *testing.T) {
		resp := doMCP(t, ts, http.MethodPost, initializeBody,
			map[string]string{"Authorization": "Bearer sekret"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestAuthDisabledWhenTokenEmpty(t *testing.T) {
	_, ts := newTestHTTP(t, HTTPConfig{APIURL: "http://crm.invalid"})

	resp := doMCP(t, ts, http.MethodPost, initializeBody, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionLifecycle(t *testing.T) {
	h, ts := newTestHTTP(t, HTTPConfig{APIURL: "http://crm.invalid"})

	// Initialize without a session id: one is assigned.
	resp := doMCP(t, ts, http.MethodPost, initializeBody, nil)
	sid := resp.Header.Get(sessionHeader)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, sid)
	assert.Contains(t, string(body), `"fluentcrm-mcp"`)
	assert.Equal(t, 1, h.sessions.len())

	// A follow-up POST with the same id reuses the session.
	resp = doMCP(t, ts, http.MethodPost, initializeBody, map[string]string{sessionHeader: sid})
	resp.Body.Close()
	assert.Equal(t, sid, resp.Header.Get(sessionHeader))
	assert.Equal(t, 1, h.sessions.len())

	// GET with the id opens the SSE continuation stream.
	resp = doMCP(t, ts, http.MethodGet, "", map[string]string{sessionHeader: sid})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	resp.Body.Close()

	// DELETE evicts the session; a later GET is rejected.
	resp = doMCP(t, ts, http.MethodDelete, "", map[string]string{sessionHeader: sid})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, h.sessions.len())

	resp = doMCP(t, ts, http.MethodGet, "", map[string]string{sessionHeader: sid})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostWithUnknownSessionEstablishesNewOne(t *testing.T) {
	h, ts := newTestHTTP(t, HTTPConfig{APIURL: "http://crm.invalid"})

	resp := doMCP(t, ts, http.MethodPost, initializeBody,
		map[string]string{sessionHeader: "long-gone"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	sid := resp.Header.Get(sessionHeader)
	assert.NotEmpty(t, sid)
	assert.NotEqual(t, "long-gone", sid)
	assert.Equal(t, 1, h.sessions.len())
}

func TestNotificationReturnsAccepted(t *testing.T) {
	_, ts := newTestHTTP(t, HTTPConfig{APIURL: "http://crm.invalid"})

	resp := doMCP(t, ts, http.MethodPost, initializedNotification, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestMethodAndPathFallthroughs(t *testing.T) {
	_, ts := newTestHTTP(t, HTTPConfig{APIURL: "http://crm.invalid"})

	resp := doMCP(t, ts, http.MethodPatch, "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	r, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	r.Body.Close()
	assert.Equal(t, http.StatusNotFound, r.StatusCode)
}

// recordingBackend captures the Authorization header of every request it
// serves.
func recordingBackend(t *testing.T) (*httptest.Server, func() []string) {
	t.Helper()
	var mu sync.Mutex
	var seen []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	t.Cleanup(ts.Close)
	return ts, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), seen...)
	}
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestSessionsDoNotShareCredentials(t *testing.T) {
	backendA, seenA := recordingBackend(t)
	backendB, seenB := recordingBackend(t)

	_, ts := newTestHTTP(t, HTTPConfig{
		APIURL:      backendA.URL,
		APIUsername: "default-user",
		APIPassword: "default-pass",
	})

	// Session A uses the process defaults.
	resp := doMCP(t, ts, http.MethodPost, initializeBody, nil)
	sidA := resp.Header.Get(sessionHeader)
	resp.Body.Close()

	// Session B overrides credentials per request headers.
	resp = doMCP(t, ts, http.MethodPost, initializeBody, map[string]string{
		headerAPIURL:   backendB.URL,
		headerUsername: "tenant-b",
		headerPassword: "hunter2",
	})
	sidB := resp.Header.Get(sessionHeader)
	resp.Body.Close()
	require.NotEqual(t, sidA, sidB)

	call := `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"fluentcrm_list_tags","arguments":{}}}`
	resp = doMCP(t, ts, http.MethodPost, call, map[string]string{sessionHeader: sidA})
	resp.Body.Close()
	resp = doMCP(t, ts, http.MethodPost, call, map[string]string{sessionHeader: sidB})
	resp.Body.Close()

	require.Len(t, seenA(), 1)
	require.Len(t, seenB(), 1)
	assert.Equal(t, basicAuth("default-user", "default-pass"), seenA()[0])
	assert.Equal(t, basicAuth("tenant-b", "hunter2"), seenB()[0])
}
