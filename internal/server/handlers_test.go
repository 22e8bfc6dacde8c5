package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/fitforge/internal/generator"
	"github.com/claude/fitforge/internal/models"
)

const testAPIKey = "test-key"

// newTestServer builds a Server with no database and an offline synthesizer.
// Handlers that touch the database are not exercised here.
func newTestServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	synth := generator.NewSynthesizer(nil, log)
	return New(nil, synth, testAPIKey, log)
}

// TestGeneratePlanOffline verifies that plan generation works end to end
// with no upstream generator, falling back to the exercise library.
func TestGeneratePlanOffline(t *testing.T) {
	srv := newTestServer()

	body := `{"muscle_groups":["chest","back"],"target_minutes":20}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/generate", strings.NewReader(body))
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result models.PlanSynthesisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Items) < 4 {
		t.Errorf("got %d items, want at least 4", len(result.Items))
	}
	if result.Title == "" {
		t.Error("title is empty")
	}
	if result.EstimatedMinutes <= 0 {
		t.Errorf("estimated minutes = %d, want positive", result.EstimatedMinutes)
	}
}

// TestGeneratePlanRequiresKey verifies the generate route sits behind auth.
func TestGeneratePlanRequiresKey(t *testing.T) {
	srv := newTestServer()

	body := `{"muscle_groups":["chest"],"target_minutes":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// TestGeneratePlanBadJSON verifies malformed bodies get a 400.
func TestGeneratePlanBadJSON(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/generate", strings.NewReader("{not json"))
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestGeneratePlanRejectsZeroMinutes verifies target_minutes must be positive.
func TestGeneratePlanRejectsZeroMinutes(t *testing.T) {
	srv := newTestServer()

	body := `{"muscle_groups":["legs"],"target_minutes":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/generate", strings.NewReader(body))
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestExerciseCatalog verifies the catalog endpoint is open and well-formed.
func TestExerciseCatalog(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		MuscleGroups []string              `json:"muscle_groups"`
		Exercises    []models.ExerciseSeed `json:"exercises"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.MuscleGroups) != 6 {
		t.Errorf("got %d muscle groups, want 6", len(resp.MuscleGroups))
	}
	if len(resp.Exercises) == 0 {
		t.Error("exercise list is empty")
	}
}

// TestExerciseHistoryRequiresName verifies the name query parameter is mandatory.
func TestExerciseHistoryRequiresName(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/history", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestTemplateInvalidID verifies malformed UUIDs get a 400 before any DB access.
func TestTemplateInvalidID(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/templates/not-a-uuid", nil)
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestMutatingRoutesRequireKey walks the mutating routes and checks each is guarded.
func TestMutatingRoutesRequireKey(t *testing.T) {
	srv := newTestServer()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/plans/generate"},
		{http.MethodPost, "/api/v1/templates"},
		{http.MethodPut, "/api/v1/templates/00000000-0000-0000-0000-000000000001"},
		{http.MethodDelete, "/api/v1/templates/00000000-0000-0000-0000-000000000001"},
		{http.MethodPost, "/api/v1/templates/00000000-0000-0000-0000-000000000001/duplicate"},
		{http.MethodPost, "/api/v1/sessions/start"},
		{http.MethodPost, "/api/v1/sessions/00000000-0000-0000-0000-000000000001/log"},
		{http.MethodPost, "/api/v1/sessions/00000000-0000-0000-0000-000000000001/complete"},
	}
	for _, rt := range routes {
		req := httptest.NewRequest(rt.method, rt.path, strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", rt.method, rt.path, rec.Code)
		}
	}
}
