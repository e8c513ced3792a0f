package fluentcrm

import "fmt"

// APIError is a hard failure from the FluentCRM REST API: the backend
// answered with a non-2xx status. Connection and timeout failures surface as
// the HTTP client's own errors instead.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("FluentCRM API Error: %s", e.Message)
}

// Reason classifies why an optional endpoint is unavailable.
type Reason string

const (
	ReasonEndpointNotFound Reason = "endpoint_not_found"
	ReasonFeatureDisabled  Reason = "feature_disabled"
	ReasonServerError      Reason = "server_error"
	ReasonNotFound         Reason = "not_found"
)

// Unavailable is the soft-failure result for endpoints that are optional or
// version-dependent (smart links). It is returned as a value rather than an
// error so callers can tell "this capability is absent in this deployment"
// apart from "the operation itself failed".
type Unavailable struct {
	Success    bool   `json:"success"` // always false
	Reason     Reason `json:"reason"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}
