// Package fluentcrm is a typed client for the FluentCRM REST API.
//
// Endpoint shapes follow https://rest-api.fluentcrm.com. Authentication is
// HTTP Basic using a WordPress application password. Successful responses are
// returned as decoded JSON verbatim; non-2xx responses become *APIError,
// except for the smart-link carve-outs in smartlinks.go.
package fluentcrm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// requestTimeout bounds every outbound call. Shared WordPress hosts can take
// well over a minute to serve the first request after idling out.
const requestTimeout = 120 * time.Second

// Client issues authenticated requests against one FluentCRM installation.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL string
	auth    string // precomputed Basic credential
	httc    *http.Client
}

// New returns a client for the API rooted at baseURL.
func New(baseURL, username, password string) *Client {
	creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    "Basic " + creds,
		httc:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (any, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.StatusCode),
			Body:       string(raw),
		}
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}

// errorMessage pulls the "message" field FluentCRM puts in error bodies,
// falling back to a status-based message for non-JSON responses.
func errorMessage(raw []byte, status int) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, payload)
}

func (c *Client) put(ctx context.Context, path string, payload any) (any, error) {
	return c.do(ctx, http.MethodPut, path, nil, payload)
}

func (c *Client) delete(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Contacts (subscribers)

func (c *Client) ListContacts(ctx context.Context, query url.Values) (any, error) {
	return c.get(ctx, "/subscribers", query)
}

func (c *Client) GetContact(ctx context.Context, subscriberID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/subscribers/%d", subscriberID), nil)
}

// FindContactByEmail searches the subscriber index and returns the first hit,
// or nil when no contact matches.
func (c *Client) FindContactByEmail(ctx context.Context, email string) (any, error) {
	v, err := c.get(ctx, "/subscribers", url.Values{"search": {email}})
	if err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		if data, ok := m["data"].([]any); ok && len(data) > 0 {
			return data[0], nil
		}
	}
	return nil, nil
}

func (c *Client) CreateContact(ctx context.Context, data map[string]any) (any, error) {
	return c.post(ctx, "/subscribers", data)
}

func (c *Client) UpdateContact(ctx context.Context, subscriberID int, data map[string]any) (any, error) {
	return c.put(ctx, fmt.Sprintf("/subscribers/%d", subscriberID), data)
}

func (c *Client) DeleteContact(ctx context.Context, subscriberID int) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/subscribers/%d", subscriberID))
}

// Tags

func (c *Client) ListTags(ctx context.Context, query url.Values) (any, error) {
	return c.get(ctx, "/tags", query)
}

func (c *Client) GetTag(ctx context.Context, tagID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/tags/%d", tagID), nil)
}

func (c *Client) CreateTag(ctx context.Context, data map[string]any) (any, error) {
	return c.post(ctx, "/tags", data)
}

func (c *Client) UpdateTag(ctx context.Context, tagID int, data map[string]any) (any, error) {
	return c.put(ctx, fmt.Sprintf("/tags/%d", tagID), data)
}

func (c *Client) DeleteTag(ctx context.Context, tagID int) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/tags/%d", tagID))
}

// AttachTagToContact wraps the flat id list under the "tags" key the backend
// expects.
func (c *Client) AttachTagToContact(ctx context.Context, subscriberID int, tagIDs []int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/subscribers/%d/tags", subscriberID), map[string]any{"tags": tagIDs})
}

func (c *Client) DetachTagFromContact(ctx context.Context, subscriberID int, tagIDs []int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/subscribers/%d/tags/detach", subscriberID), map[string]any{"tags": tagIDs})
}

// Lists

func (c *Client) ListLists(ctx context.Context, query url.Values) (any, error) {
	return c.get(ctx, "/lists", query)
}

func (c *Client) GetList(ctx context.Context, listID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/lists/%d", listID), nil)
}

func (c *Client) CreateList(ctx context.Context, data map[string]any) (any, error) {
	return c.post(ctx, "/lists", data)
}

func (c *Client) UpdateList(ctx context.Context, listID int, data map[string]any) (any, error) {
	return c.put(ctx, fmt.Sprintf("/lists/%d", listID), data)
}

func (c *Client) DeleteList(ctx context.Context, listID int) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/lists/%d", listID))
}

func (c *Client) AttachContactToList(ctx context.Context, subscriberID int, listIDs []int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/subscribers/%d/lists", subscriberID), map[string]any{"lists": listIDs})
}

func (c *Client) DetachContactFromList(ctx context.Context, subscriberID int, listIDs []int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/subscribers/%d/lists/detach", subscriberID), map[string]any{"lists": listIDs})
}

// Campaigns

func (c *Client) ListCampaigns(ctx context.Context, query url.Values) (any, error) {
	return c.get(ctx, "/campaigns", query)
}

func (c *Client) GetCampaign(ctx context.Context, campaignID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/campaigns/%d", campaignID), nil)
}

// CreateCampaign reshapes the flat tool input into the nested payload the
// backend expects: the subject doubles as email_subject, mailer and UTM
// overrides move under settings, and recipients are grouped by kind.
// Supplying scheduled_at flips the status to "scheduled"; otherwise the
// campaign is created as a draft unless the caller says otherwise.
func (c *Client) CreateCampaign(ctx context.Context, in map[string]any) (any, error) {
	payload := map[string]any{
		"title":  in["title"],
		"status": "draft",
	}
	if v, ok := in["subject"]; ok {
		payload["email_subject"] = v
	}
	if v, ok := in["status"]; ok {
		payload["status"] = v
	}
	for _, k := range []string{"email_pre_header", "template_id", "subjects"} {
		if v, ok := in[k]; ok {
			payload[k] = v
		}
	}
	if v, ok := in["scheduled_at"]; ok {
		payload["scheduled_at"] = v
		payload["status"] = "scheduled"
	}

	settings := map[string]any{}
	mailer := map[string]any{}
	for _, k := range []string{"from_name", "from_email", "reply_to_name", "reply_to_email"} {
		if v, ok := in[k]; ok {
			mailer[k] = v
		}
	}
	if len(mailer) > 0 {
		settings["mailer_settings"] = mailer
	}
	utm := map[string]any{}
	for _, k := range []string{"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content"} {
		if v, ok := in[k]; ok {
			utm[k] = v
		}
	}
	if len(utm) > 0 {
		utm["utm_status"] = 1
		settings["utm"] = utm
	}
	recipients := map[string]any{}
	if v, ok := in["recipient_list"]; ok {
		recipients["lists"] = v
	}
	if v, ok := in["tags"]; ok {
		recipients["tags"] = v
	}
	if v, ok := in["contact_emails"]; ok {
		recipients["contact_emails"] = v
	}
	if len(recipients) > 0 {
		settings["subscribers"] = recipients
	}
	if len(settings) > 0 {
		payload["settings"] = settings
	}
	return c.post(ctx, "/campaigns", payload)
}

func (c *Client) UpdateCampaign(ctx context.Context, campaignID int, data map[string]any) (any, error) {
	return c.put(ctx, fmt.Sprintf("/campaigns/%d", campaignID), data)
}

func (c *Client) PauseCampaign(ctx context.Context, campaignID int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/campaigns/%d/pause", campaignID), nil)
}

func (c *Client) ResumeCampaign(ctx context.Context, campaignID int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/campaigns/%d/resume", campaignID), nil)
}

func (c *Client) DeleteCampaign(ctx context.Context, campaignID int) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/campaigns/%d", campaignID))
}

// Email templates

func (c *Client) ListEmailTemplates(ctx context.Context, query url.Values) (any, error) {
	return c.get(ctx, "/email-templates", query)
}

func (c *Client) GetEmailTemplate(ctx context.Context, templateID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/email-templates/%d", templateID), nil)
}

func (c *Client) CreateEmailTemplate(ctx context.Context, data map[string]any) (any, error) {
	return c.post(ctx, "/email-templates", data)
}

func (c *Client) UpdateEmailTemplate(ctx context.Context, templateID int, data map[string]any) (any, error) {
	return c.put(ctx, fmt.Sprintf("/email-templates/%d", templateID), data)
}

func (c *Client) DeleteEmailTemplate(ctx context.Context, templateID int) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/email-templates/%d", templateID))
}

// Automations (funnels)

func (c *Client) ListAutomations(ctx context.Context, query url.Values) (any, error) {
	return c.get(ctx, "/funnels", query)
}

func (c *Client) GetAutomation(ctx context.Context, funnelID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/funnels/%d", funnelID), nil)
}

// CreateAutomation synthesizes the trigger_name field from the simpler
// "trigger" input and starts the funnel in draft state.
func (c *Client) CreateAutomation(ctx context.Context, in map[string]any) (any, error) {
	payload := map[string]any{
		"title":  in["title"],
		"status": "draft",
	}
	if v, ok := in["description"]; ok {
		payload["description"] = v
	}
	if v, ok := in["trigger"]; ok {
		payload["trigger_name"] = v
	}
	return c.post(ctx, "/funnels", payload)
}

func (c *Client) UpdateAutomation(ctx context.Context, funnelID int, data map[string]any) (any, error) {
	return c.put(ctx, fmt.Sprintf("/funnels/%d", funnelID), data)
}

func (c *Client) DeleteAutomation(ctx context.Context, funnelID int) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/funnels/%d", funnelID))
}

func (c *Client) UpdateFunnelStatus(ctx context.Context, funnelID int, status string) (any, error) {
	return c.put(ctx, fmt.Sprintf("/funnels/%d/status", funnelID), map[string]any{"status": status})
}

func (c *Client) DuplicateFunnel(ctx context.Context, funnelID int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/funnels/%d/duplicate", funnelID), nil)
}

func (c *Client) GetFunnelSubscribers(ctx context.Context, funnelID int, query url.Values) (any, error) {
	return c.get(ctx, fmt.Sprintf("/funnels/%d/subscribers", funnelID), query)
}

func (c *Client) UpdateFunnelSubscriberStatus(ctx context.Context, funnelID, subscriberID int, status string) (any, error) {
	return c.put(ctx, fmt.Sprintf("/funnels/%d/subscribers/%d/status", funnelID, subscriberID),
		map[string]any{"status": status})
}

func (c *Client) RemoveFunnelSubscribers(ctx context.Context, funnelID int, subscriberIDs []int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/funnels/%d/subscribers/remove", funnelID),
		map[string]any{"subscriber_ids": subscriberIDs})
}

// AddSubscribersToFunnel enrolls contacts into a funnel. Requires FluentCRM Pro.
func (c *Client) AddSubscribersToFunnel(ctx context.Context, funnelID int, subscriberIDs []int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/funnels/%d/subscribers", funnelID),
		map[string]any{"subscriber_ids": subscriberIDs})
}

func (c *Client) GetFunnelReport(ctx context.Context, funnelID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/funnels/%d/report", funnelID), nil)
}

func (c *Client) GetFunnelSequences(ctx context.Context, funnelID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/funnels/%d/sequences", funnelID), nil)
}

// Webhooks

func (c *Client) ListWebhooks(ctx context.Context, query url.Values) (any, error) {
	return c.get(ctx, "/webhooks", query)
}

// CreateWebhook defaults the status to "pending" when the caller leaves it
// out; the backend rejects webhooks without one.
func (c *Client) CreateWebhook(ctx context.Context, data map[string]any) (any, error) {
	if _, ok := data["status"]; !ok {
		data["status"] = "pending"
	}
	return c.post(ctx, "/webhook", data)
}

func (c *Client) UpdateWebhook(ctx context.Context, webhookID int, data map[string]any) (any, error) {
	return c.put(ctx, fmt.Sprintf("/webhook/%d", webhookID), data)
}

func (c *Client) DeleteWebhook(ctx context.Context, webhookID int) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/webhook/%d", webhookID))
}

// Custom fields and reports

func (c *Client) ListCustomFields(ctx context.Context) (any, error) {
	return c.get(ctx, "/custom-fields", nil)
}

func (c *Client) GetDashboardStats(ctx context.Context) (any, error) {
	return c.get(ctx, "/reports/dashboard-stats", nil)
}

func (c *Client) GetSubscribersGrowthRate(ctx context.Context, query url.Values) (any, error) {
	return c.get(ctx, "/reports/subscribers-growth-rate", query)
}
