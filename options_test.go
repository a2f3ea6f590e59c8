package nexusdb

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithBaseURL(t *testing.T) {
	c := &Client{}
	if err := WithBaseURL("http://localhost:9201/query")(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != "http://localhost:9201/query" {
		t.Fatalf("base URL = %q", c.baseURL)
	}
}

func TestWithHTTPClient_NilRejected(t *testing.T) {
	c := &Client{}
	if err := WithHTTPClient(nil)(c); err == nil {
		t.Fatal("expected error for nil http client")
	}
}

func TestWithRetry(t *testing.T) {
	c := &Client{}
	if err := WithRetry(RetryPolicy{MaxAttempts: 2})(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.retry == nil || c.retry.MaxAttempts != 2 {
		t.Fatalf("retry policy not installed: %+v", c.retry)
	}
}

func TestWithDebugLogging(t *testing.T) {
	// debug logging wraps transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New("test-api-key",
		WithHTTPClient(&http.Client{Transport: rt}),
		WithHTTPTimeout(2*time.Second),
		WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New("k", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}
