package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// capture runs a test server that records the decoded JSON body of the last
// request and replies with respBody.
func capture(t *testing.T, respBody string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}
