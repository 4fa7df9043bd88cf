package handlers

import (
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	router := newTestHandler(Config{})

	rec := doRequest(t, router, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got map[string]interface{}
	decodeBody(t, rec, &got)
	if got["status"] != "ok" {
		t.Errorf("status field = %v, want ok", got["status"])
	}
}
