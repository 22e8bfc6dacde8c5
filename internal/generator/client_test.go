package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/fitforge/internal/models"
)

// TestGenerateRaw verifies the request wire shape and verbatim passthrough
// of the generator's response body.
func TestGenerateRaw(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/generate" {
			t.Errorf("path = %q, want /v1/generate", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "k" {
			t.Errorf("api key header = %q, want k", r.Header.Get("X-API-Key"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte("Bench Press 3x8\nSquat 3x10"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", 0)
	raw, err := c.GenerateRaw(context.Background(), models.GenerationRequest{
		SelectedMuscleGroups: []string{"chest", "legs"},
		TargetMinutes:        45,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "Bench Press 3x8\nSquat 3x10" {
		t.Errorf("raw = %q", raw)
	}
	if gotBody.DurationMinutes != 45 || len(gotBody.MuscleGroups) != 2 {
		t.Errorf("request body = %+v", gotBody)
	}
}

// TestGenerateRawServerError verifies non-200 responses surface as errors
// so the synthesizer can fall back.
func TestGenerateRawServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	if _, err := c.GenerateRaw(context.Background(), models.GenerationRequest{TargetMinutes: 30}); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

// TestGenerateRawWithRetry verifies transient failures are retried and the
// first success wins.
func TestGenerateRawWithRetry(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, "flaky", http.StatusBadGateway)
			return
		}
		w.Write([]byte("Deadlift 3x5"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	raw, err := c.GenerateRawWithRetry(context.Background(), models.GenerationRequest{TargetMinutes: 30}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if raw != "Deadlift 3x5" {
		t.Errorf("raw = %q, want Deadlift 3x5", raw)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}
