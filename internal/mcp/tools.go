package mcp

import (
	"context"
	"strings"

	"github.com/claude/fitforge/internal/models"
	"github.com/claude/fitforge/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseGroups splits a comma-separated muscle group list into clean names.
func parseGroups(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var groups []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			groups = append(groups, part)
		}
	}
	return groups
}

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_workout_plan",
	mcp.WithDescription("Generate a workout plan fitted to a target duration. Uses the plan generator when configured, falling back to the built-in exercise library. Always returns a valid plan."),
	mcp.WithNumber("target_minutes", mcp.Required(), mcp.Description("Desired workout duration in minutes (e.g. 45)")),
	mcp.WithString("muscle_groups", mcp.Description("Comma-separated muscle groups to focus on (chest, back, legs, shoulders, arms, core). Empty means full body.")),
	mcp.WithString("raw", mcp.Description("Raw generator output to re-fit instead of calling the generator (e.g. a plan transcript to adjust to a new duration)")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List built-in exercises with muscle group, compound/isolation category, and default set counts."),
	mcp.WithString("muscle_group", mcp.Description("Filter by a single muscle group (e.g. 'chest')")),
)

var toolGetTemplates = mcp.NewTool("get_templates",
	mcp.WithDescription("List saved workout templates with title, description, and creation mode."),
)

var toolGetSessions = mcp.NewTool("get_sessions",
	mcp.WithDescription("List recent workout sessions with status, timing, and the originating template title."),
	mcp.WithNumber("limit", mcp.Description("Maximum sessions to return. Defaults to 20.")),
)

var toolGetExerciseHistory = mcp.NewTool("get_exercise_history",
	mcp.WithDescription("Logged sets for one exercise, newest first, each with an estimated one-rep max."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (exact match, e.g. 'Bench Press')")),
	mcp.WithNumber("limit", mcp.Description("Maximum entries to return. Defaults to 50.")),
)

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	minutes, err := req.RequireInt("target_minutes")
	if err != nil {
		return mcp.NewToolResultError("target_minutes parameter is required"), nil
	}
	if minutes <= 0 {
		return mcp.NewToolResultError("target_minutes must be positive"), nil
	}

	genReq := models.GenerationRequest{
		SelectedMuscleGroups: parseGroups(req.GetString("muscle_groups", "")),
		TargetMinutes:        minutes,
	}

	var fitted models.PlanSynthesisResult
	if raw := req.GetString("raw", ""); raw != "" {
		fitted = h.synth.Resynthesize(raw, genReq)
	} else {
		fitted = h.synth.Synthesize(ctx, genReq)
	}

	result, err := mcp.NewToolResultJSON(fitted)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := strings.ToLower(strings.TrimSpace(req.GetString("muscle_group", "")))

	seeds := plan.CatalogSeeds()
	if filter != "" {
		var filtered []models.ExerciseSeed
		for _, s := range seeds {
			if s.MuscleGroup == filter {
				filtered = append(filtered, s)
			}
		}
		seeds = filtered
	}

	result, err := mcp.NewToolResultJSON(seeds)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTemplates(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templates, err := h.db.ListTemplates(ctx)
	if err != nil {
		h.log.Error("mcp get_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(templates)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 20)

	sessions, err := h.db.ListSessions(ctx, limit)
	if err != nil {
		h.log.Error("mcp get_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	limit := req.GetInt("limit", 50)

	entries, err := h.db.ExerciseHistory(ctx, exercise, limit)
	if err != nil {
		h.log.Error("mcp get_exercise_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
