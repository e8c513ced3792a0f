package fluentcrm

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestListSmartLinksEndpointNotFound(t *testing.T) {
	c := newTestClient(t, respond(http.StatusNotFound,
		`{"code":"rest_no_route","message":"No route was found matching the URL and request method."}`))

	v, err := c.ListSmartLinks(t.Context(), nil)
	require.NoError(t, err, "missing endpoint must not be a hard error")

	u, ok := v.(*Unavailable)
	require.True(t, ok)
	assert.False(t, u.Success)
	assert.Equal(t, ReasonEndpointNotFound, u.Reason)
	assert.NotEmpty(t, u.Suggestion)
}

func TestGetSmartLinkNotFound(t *testing.T) {
	// A 404 for a specific id on an installation that has the route means the
	// link itself is missing.
	c := newTestClient(t, respond(http.StatusNotFound, `{"message":"Smart link not found"}`))

	v, err := c.GetSmartLink(t.Context(), 42)
	require.NoError(t, err)

	u, ok := v.(*Unavailable)
	require.True(t, ok)
	assert.Equal(t, ReasonNotFound, u.Reason)
	assert.Equal(t, "Smart link not found", u.Message)
}

func TestGetSmartLinkNoRoute(t *testing.T) {
	c := newTestClient(t, respond(http.StatusNotFound,
		`{"code":"rest_no_route","message":"No route was found matching the URL and request method."}`))

	v, err := c.GetSmartLink(t.Context(), 42)
	require.NoError(t, err)
	u, ok := v.(*Unavailable)
	require.True(t, ok)
	assert.Equal(t, ReasonEndpointNotFound, u.Reason)
}

func TestCreateSmartLinkFeatureDisabled(t *testing.T) {
	c := newTestClient(t, respond(http.StatusUnprocessableEntity, `{"message":"feature off"}`))

	v, err := c.CreateSmartLink(t.Context(), SmartLinkData{Title: "A", TargetURL: "https://x"})
	require.NoError(t, err)
	u, ok := v.(*Unavailable)
	require.True(t, ok)
	assert.Equal(t, ReasonFeatureDisabled, u.Reason)
}

func TestSmartLinkServerErrorIsSoft(t *testing.T) {
	c := newTestClient(t, respond(http.StatusInternalServerError, `{"message":"smart links table missing"}`))

	v, err := c.DeleteSmartLink(t.Context(), 3)
	require.NoError(t, err)
	u, ok := v.(*Unavailable)
	require.True(t, ok)
	assert.Equal(t, ReasonServerError, u.Reason)
	assert.Equal(t, "smart links table missing", u.Message)
}

func TestSmartLinkOtherErrorsStayHard(t *testing.T) {
	c := newTestClient(t, respond(http.StatusUnauthorized, `{"message":"bad credentials"}`))

	_, err := c.ListSmartLinks(t.Context(), nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSmartLinkSuccessPassesThrough(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"id":1,"slug":"welcome"}`))

	v, err := c.GetSmartLink(t.Context(), 1)
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "welcome", m["slug"])
}

func TestValidateSmartLinkData(t *testing.T) {
	tests := []struct {
		name       string
		data       SmartLinkData
		wantValid  bool
		wantErrors []string
	}{
		{
			name:      "valid payload",
			data:      SmartLinkData{Title: "A", TargetURL: "http://x"},
			wantValid: true,
		},
		{
			name: "missing title and bad scheme",
			data: SmartLinkData{Title: "", TargetURL: "ftp://x"},
			wantErrors: []string{
				"Title is required and must be a string",
				"Target URL must start with http:// or https://",
			},
		},
		{
			name:       "missing target url",
			data:       SmartLinkData{Title: "A"},
			wantErrors: []string{"Target URL is required and must be a string"},
		},
		{
			name:       "bad slug",
			data:       SmartLinkData{Title: "A", TargetURL: "https://x", Slug: "Bad Slug!"},
			wantErrors: []string{"Slug must contain only lowercase letters, numbers, and hyphens"},
		},
		{
			name:      "good slug",
			data:      SmartLinkData{Title: "A", TargetURL: "https://x", Slug: "aw-link-webinar-mail"},
			wantValid: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateSmartLinkData(tt.data)
			assert.Equal(t, tt.wantValid, res.Valid)
			if tt.wantValid {
				assert.Empty(t, res.Errors)
			} else {
				assert.ElementsMatch(t, tt.wantErrors, res.Errors)
			}
		})
	}
}

func TestGenerateSmartLinkShortcode(t *testing.T) {
	assert.Equal(t, "{{fc_smart_link slug='my-slug'}}", GenerateSmartLinkShortcode("my-slug", ""))
	assert.Equal(t,
		`<a href="{{fc_smart_link slug='my-slug'}}">Join the webinar</a>`,
		GenerateSmartLinkShortcode("my-slug", "Join the webinar"))
}
