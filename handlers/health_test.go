package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRootLiveness(t *testing.T) {
	r := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected liveness message")
	}
}

func TestTestStatusWithoutStore(t *testing.T) {
	r := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(rec, req)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["backend"] != "running" {
		t.Fatalf("expected backend running, got %q", resp["backend"])
	}
	if resp["database"] != "unavailable" {
		t.Fatalf("expected database unavailable, got %q", resp["database"])
	}
}

func TestTestStatusConnected(t *testing.T) {
	r := newTestRouter(t, &fakeJobRepo{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(rec, req)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["database"] != "connected" {
		t.Fatalf("expected database connected, got %q", resp["database"])
	}
}

func TestTestStatusTruncatesLongError(t *testing.T) {
	long := strings.Repeat("mongo topology error ", 10)
	r := newTestRouter(t, &fakeJobRepo{pingErr: errors.New(long)})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(rec, req)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp["database"]) > 60 {
		t.Fatalf("expected truncation to 60 chars, got %d", len(resp["database"]))
	}
	if !strings.HasPrefix(resp["database"], "mongo topology error") {
		t.Fatalf("expected underlying message prefix, got %q", resp["database"])
	}
}
