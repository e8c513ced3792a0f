package fluentcrm

// Smart Links are a version-dependent FluentCRM feature: older installations
// have no REST endpoint for them at all. Every remote operation in this file
// therefore converts the known "feature not present" responses into an
// *Unavailable value instead of a hard error.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Slug rule matching what FluentCRM accepts in shortcodes.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	return v
}

// SmartLinkData is a candidate smart-link payload.
type SmartLinkData struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,slug"`
	TargetURL   string `json:"target_url" validate:"required,startswith=http"`
	ApplyTags   []int  `json:"apply_tags,omitempty"`
	ApplyLists  []int  `json:"apply_lists,omitempty"`
	RemoveTags  []int  `json:"remove_tags,omitempty"`
	RemoveLists []int  `json:"remove_lists,omitempty"`
	AutoLogin   bool   `json:"auto_login,omitempty"`
}

// ValidationResult reports the outcome of ValidateSmartLinkData.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateSmartLinkData checks a candidate payload against the syntactic
// rules the admin panel enforces, without touching the backend.
func ValidateSmartLinkData(data SmartLinkData) ValidationResult {
	msgs := []string{}
	if err := validate.Struct(data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				msgs = append(msgs, validationMessage(fe))
			}
		}
	}
	return ValidationResult{Valid: len(msgs) == 0, Errors: msgs}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Title":
		return "Title is required and must be a string"
	case "TargetURL":
		if fe.Tag() == "required" {
			return "Target URL is required and must be a string"
		}
		return "Target URL must start with http:// or https://"
	case "Slug":
		return "Slug must contain only lowercase letters, numbers, and hyphens"
	}
	return fe.Error()
}

// GenerateSmartLinkShortcode renders the shortcode for a smart link slug,
// optionally wrapped in an anchor tag with the given link text.
func GenerateSmartLinkShortcode(slug, linkText string) string {
	shortcode := fmt.Sprintf("{{fc_smart_link slug='%s'}}", slug)
	if linkText != "" {
		return fmt.Sprintf(`<a href="%s">%s</a>`, shortcode, linkText)
	}
	return shortcode
}

func (c *Client) ListSmartLinks(ctx context.Context, query url.Values) (any, error) {
	v, err := c.get(ctx, "/smart-links", query)
	return softenSmartLink(v, err, "Use FluentCRM admin panel to manage Smart Links manually", false)
}

func (c *Client) GetSmartLink(ctx context.Context, smartLinkID int) (any, error) {
	v, err := c.get(ctx, fmt.Sprintf("/smart-links/%d", smartLinkID), nil)
	return softenSmartLink(v, err, "Use FluentCRM admin panel to view Smart Link details", true)
}

func (c *Client) CreateSmartLink(ctx context.Context, data SmartLinkData) (any, error) {
	v, err := c.post(ctx, "/smart-links", data)
	return softenSmartLink(v, err, "Create Smart Link manually in FluentCRM admin panel", false)
}

func (c *Client) UpdateSmartLink(ctx context.Context, smartLinkID int, data map[string]any) (any, error) {
	v, err := c.put(ctx, fmt.Sprintf("/smart-links/%d", smartLinkID), data)
	return softenSmartLink(v, err, "Update Smart Link manually in FluentCRM admin panel", true)
}

func (c *Client) DeleteSmartLink(ctx context.Context, smartLinkID int) (any, error) {
	v, err := c.delete(ctx, fmt.Sprintf("/smart-links/%d", smartLinkID))
	return softenSmartLink(v, err, "Delete Smart Link manually in FluentCRM admin panel", true)
}

// softenSmartLink converts the known unavailability responses into an
// *Unavailable value. idAddressed distinguishes "the route does not exist"
// from "this particular link does not exist" on 404s: WordPress reports a
// missing route with a rest_no_route body.
func softenSmartLink(v any, err error, suggestion string, idAddressed bool) (any, error) {
	if err == nil {
		return v, nil
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return nil, err
	}
	u := &Unavailable{Suggestion: suggestion}
	switch {
	case apiErr.StatusCode == http.StatusNotFound &&
		(!idAddressed || strings.Contains(apiErr.Body, "rest_no_route")):
		u.Reason = ReasonEndpointNotFound
		u.Message = "Smart Links API endpoint not available yet in FluentCRM"
	case apiErr.StatusCode == http.StatusNotFound:
		u.Reason = ReasonNotFound
		u.Message = apiErr.Message
	case apiErr.StatusCode == http.StatusUnprocessableEntity:
		u.Reason = ReasonFeatureDisabled
		u.Message = "Smart Links feature is disabled in this FluentCRM installation"
	case apiErr.StatusCode >= 500:
		u.Reason = ReasonServerError
		u.Message = apiErr.Message
	default:
		return nil, err
	}
	return u, nil
}
