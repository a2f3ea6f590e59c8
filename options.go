package nexusdb

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the API-key transport wrapper is installed, so
// transport-related options (like debug logging) sit underneath the
// credential wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithBaseURL overrides the production query endpoint, e.g. to point the
// client at a staging deployment or a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		u = strings.TrimSpace(u)
		if u == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. The API-key
// wrapper is still installed on top of the given client's transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped to the log when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// full request and response bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithRetry enables retrying of recoverable failures (5xx, 408, 429 and
// network errors) with exponential backoff. The client performs no retries
// unless this option is given; zero-valued policy fields take defaults.
func WithRetry(p RetryPolicy) Option {
	return func(c *Client) error {
		policy := p
		c.retry = &policy
		return nil
	}
}
