package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluentcrm-mcp/internal/fluentcrm"
	"fluentcrm-mcp/internal/i18n"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer builds a Server whose client talks to the given fake
// FluentCRM backend.
func newTestServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()
	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)
	tr, _ := i18n.New("en")
	return New(fluentcrm.New(backend.URL, "user", "pass"), tr, testLogger())
}

func firstText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestCatalogueRegistryBijection(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.Len(t, srv.registry, len(catalogue))

	seen := map[string]bool{}
	for _, def := range catalogue {
		assert.False(t, seen[def.name], "duplicate tool name %s", def.name)
		seen[def.name] = true
		_, ok := srv.registry[def.name]
		assert.True(t, ok, "tool %s missing from registry", def.name)
	}
}

func TestCatalogueFullyLocalized(t *testing.T) {
	for _, lang := range []string{"en", "pl"} {
		tr, ok := i18n.New(lang)
		require.True(t, ok)
		for _, def := range catalogue {
			// Describe falls back to the key itself when no entry exists.
			assert.NotEqual(t, def.name, tr.Describe(def.name),
				"tool %s has no %s description", def.name, lang)
		}
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be reached")
	})

	res := srv.dispatch(context.Background(), "fluentcrm_teleport", arguments{})
	assert.True(t, res.IsError)
	assert.Equal(t, "❌ Error: Unknown tool: fluentcrm_teleport", firstText(t, res))
}

func TestDispatchMissingRequiredParameter(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be reached")
	})

	res := srv.dispatch(context.Background(), "fluentcrm_get_contact", arguments{})
	assert.True(t, res.IsError)
	assert.Contains(t, firstText(t, res), `missing required parameter "subscriberId"`)
}

func TestDispatchBackendError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database exploded"}`))
	})

	res := srv.dispatch(context.Background(), "fluentcrm_get_contact",
		arguments{"subscriberId": float64(7)})
	assert.True(t, res.IsError)
	assert.Equal(t, "❌ Error: FluentCRM API Error: database exploded", firstText(t, res))
}

func TestDispatchSuccess(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":1,"title":"vip"}]}`))
	})

	res := srv.dispatch(context.Background(), "fluentcrm_list_tags", arguments{})
	assert.False(t, res.IsError)
	text := firstText(t, res)
	// Responses are pretty-printed for the reading agent.
	assert.Contains(t, text, "\"data\": [")
	assert.Contains(t, text, `"title": "vip"`)
}

func TestDispatchSoftFailureIsNotAnError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"rest_no_route","message":"No route"}`))
	})

	res := srv.dispatch(context.Background(), "fluentcrm_list_smart_links", arguments{})
	assert.False(t, res.IsError)
	text := firstText(t, res)
	assert.Contains(t, text, `"success": false`)
	assert.Contains(t, text, `"reason": "endpoint_not_found"`)
}

func TestDispatchPureTools(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be reached")
	})

	res := srv.dispatch(context.Background(), "fluentcrm_generate_smart_link_shortcode",
		arguments{"slug": "promo", "linkText": "Click"})
	assert.False(t, res.IsError)
	assert.Contains(t, firstText(t, res), `{{fc_smart_link slug='promo'}}`)

	res = srv.dispatch(context.Background(), "fluentcrm_validate_smart_link_data",
		arguments{"title": "Promo", "target_url": "ftp://x"})
	assert.False(t, res.IsError)
	text := firstText(t, res)
	assert.Contains(t, text, `"valid": false`)
	assert.Contains(t, text, "Target URL must start with http:// or https://")
}

func TestArgumentsHelpers(t *testing.T) {
	args := arguments{
		"page":   float64(2),
		"search": "joe",
		"ids":    []any{float64(1), float64(2)},
		"strId":  "15",
		"flag":   true,
	}

	assert.Equal(t, 2, args.num("page"))
	assert.Equal(t, 15, args.num("strId"))
	assert.Equal(t, 0, args.num("absent"))
	assert.Equal(t, []int{1, 2}, args.ints("ids"))
	assert.True(t, args.boolean("flag"))

	q := args.query("page", "search", "absent")
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "joe", q.Get("search"))
	assert.False(t, q.Has("absent"))

	obj := args.object("page")
	assert.NotContains(t, obj, "page")
	assert.Contains(t, obj, "search")
	// The original map is untouched.
	assert.Contains(t, args, "page")
}
