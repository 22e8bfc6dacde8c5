package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/claude/fitforge/internal/generator"
	"github.com/claude/fitforge/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func testHandlers() *handlers {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &handlers{synth: generator.NewSynthesizer(nil, log), log: log}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultJSON unwraps the text content of a tool result and unmarshals it into v.
func resultJSON(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	if result.IsError {
		t.Fatalf("tool returned error: %+v", result.Content)
	}
	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", result.Content[0])
	}
	if err := json.Unmarshal([]byte(text.Text), v); err != nil {
		t.Fatalf("unmarshal tool result: %v", err)
	}
}

// TestParseGroups verifies comma splitting and whitespace handling.
func TestParseGroups(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"chest", []string{"chest"}},
		{"chest,back", []string{"chest", "back"}},
		{" chest , back , ", []string{"chest", "back"}},
		{",,legs,", []string{"legs"}},
	}
	for _, tt := range tests {
		if got := parseGroups(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseGroups(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestGeneratePlanTool verifies the generate tool produces a fitted plan
// offline, with the fallback library supplying exercises.
func TestGeneratePlanTool(t *testing.T) {
	h := testHandlers()

	result, err := h.generatePlan(context.Background(), callRequest(map[string]any{
		"target_minutes": float64(45),
		"muscle_groups":  "chest, back",
	}))
	if err != nil {
		t.Fatal(err)
	}

	var fitted models.PlanSynthesisResult
	resultJSON(t, result, &fitted)

	if len(fitted.Items) < 4 {
		t.Errorf("got %d items, want at least 4", len(fitted.Items))
	}
	if fitted.Title != "Chest & Back Workout" {
		t.Errorf("title = %q, want %q", fitted.Title, "Chest & Back Workout")
	}
}

// TestGeneratePlanToolMissingMinutes verifies a missing target_minutes is a tool error.
func TestGeneratePlanToolMissingMinutes(t *testing.T) {
	h := testHandlers()

	result, err := h.generatePlan(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected tool error for missing target_minutes")
	}
}

// TestListExercisesFilter verifies the muscle group filter.
func TestListExercisesFilter(t *testing.T) {
	h := testHandlers()

	result, err := h.listExercises(context.Background(), callRequest(map[string]any{
		"muscle_group": "core",
	}))
	if err != nil {
		t.Fatal(err)
	}

	var seeds []models.ExerciseSeed
	resultJSON(t, result, &seeds)

	if len(seeds) == 0 {
		t.Fatal("no core exercises returned")
	}
	for _, s := range seeds {
		if s.MuscleGroup != "core" {
			t.Errorf("exercise %q has group %q, want core", s.Name, s.MuscleGroup)
		}
	}
}

// TestExerciseCatalogResource verifies the catalog resource serves JSON.
func TestExerciseCatalogResource(t *testing.T) {
	h := testHandlers()

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "fitforge://exercise_catalog"

	contents, err := h.exerciseCatalog(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents type = %T, want TextResourceContents", contents[0])
	}

	var catalog struct {
		MuscleGroups []string              `json:"muscle_groups"`
		Exercises    []models.ExerciseSeed `json:"exercises"`
	}
	if err := json.Unmarshal([]byte(text.Text), &catalog); err != nil {
		t.Fatalf("unmarshal catalog: %v", err)
	}
	if len(catalog.MuscleGroups) != 6 {
		t.Errorf("got %d muscle groups, want 6", len(catalog.MuscleGroups))
	}
	if len(catalog.Exercises) == 0 {
		t.Error("catalog has no exercises")
	}
}
