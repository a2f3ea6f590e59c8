package nexusdb

import "testing"

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("NEXUSDB_DEBUG", "true")
	c, err := New("test-api-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	akt, ok := c.http.Transport.(*apiKeyTransport)
	if !ok {
		t.Fatalf("outer transport = %T", c.http.Transport)
	}
	if _, ok := akt.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport beneath the API-key wrapper when NEXUSDB_DEBUG=true, got %T", akt.base)
	}
}
