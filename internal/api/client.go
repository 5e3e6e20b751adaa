// Package api provides the HTTP client for the specwiz backend: the template
// store and the project creation service.
//
// The client is a thin Resty wrapper. It implements the wizard's
// TemplateStore and ProjectCreator interfaces, so the wizard core never sees
// HTTP. Requests carry a bearer API key and a per-request correlation id.
//
// Key types:
//   - [Client] - configured HTTP client for both services
//
// Failed calls return wrapped errors; template lookups that 404 return
// [project.ErrTemplateNotFound] so callers can distinguish "no such template"
// from transport failures. No call is retried automatically: resolution and
// creation failures surface to the user, who decides whether to try again.
package api

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"specwiz/internal/config"
)

// Client provides access to the backend template and project services.
//
// Create with [New]; the zero value is not usable.
type Client struct {
	http *resty.Client
}

// New creates a [Client] from configuration.
//
// The base URL must be absolute with an http or https scheme. The API key is
// optional; when set it is sent as a bearer token.
func New(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	baseURL, err := validateBaseURL(cfg.API.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.API.APIKey != "" {
		http.SetHeader("Authorization", "Bearer "+cfg.API.APIKey)
	}

	// Correlation id per request, for tracing on the backend side.
	http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &Client{http: http}, nil
}

// validateBaseURL checks the backend root is an absolute http(s) URL.
func validateBaseURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("API base URL is required (set api.base_url in config or SPECWIZ_API_URL)")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid API base URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return "", fmt.Errorf("API base URL must be absolute, got: %s", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("API base URL scheme must be http or https, got: %s", parsed.Scheme)
	}

	return raw, nil
}
