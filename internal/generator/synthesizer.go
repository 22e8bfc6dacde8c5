package generator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/claude/fitforge/internal/models"
	"github.com/claude/fitforge/internal/plan"
)

// RawGenerator produces loosely-structured plan text. Satisfied by *Client;
// tests substitute stubs.
type RawGenerator interface {
	GenerateRawWithRetry(ctx context.Context, req models.GenerationRequest, log *slog.Logger) (string, error)
}

// Synthesizer turns a generation request into a concrete, time-fitted plan:
// generator output when available, library fallback otherwise, always
// through the duration fitting engine. A nil generator means offline mode.
type Synthesizer struct {
	gen RawGenerator
	log *slog.Logger
}

// NewSynthesizer creates a Synthesizer. gen may be nil for offline mode.
func NewSynthesizer(gen RawGenerator, log *slog.Logger) *Synthesizer {
	return &Synthesizer{gen: gen, log: log}
}

// Synthesize builds a plan for the request. It never returns an error:
// every degenerate input degrades to a best-effort valid plan.
func (s *Synthesizer) Synthesize(ctx context.Context, req models.GenerationRequest) models.PlanSynthesisResult {
	var raw string
	if s.gen != nil {
		out, err := s.gen.GenerateRawWithRetry(ctx, req, s.log)
		if err != nil {
			s.log.Warn("generator unavailable, using library fallback", "error", err)
		} else {
			raw = out
		}
	}

	title, items := plan.Parse(raw)
	if len(items) == 0 {
		items = plan.SelectFallback(req.SelectedMuscleGroups, plan.ProfileFor(req.TargetMinutes))
	}
	if title == "" {
		title = focusTitle(req.SelectedMuscleGroups)
	}

	items, minutes := plan.Fit(items, req.SelectedMuscleGroups, req.TargetMinutes)
	return models.PlanSynthesisResult{Title: title, Items: items, EstimatedMinutes: minutes}
}

// Resynthesize re-fits previously parsed raw text, used when the caller
// already holds generator output (swap/regenerate actions).
func (s *Synthesizer) Resynthesize(raw string, req models.GenerationRequest) models.PlanSynthesisResult {
	title, items := plan.Parse(raw)
	if len(items) == 0 {
		items = plan.SelectFallback(req.SelectedMuscleGroups, plan.ProfileFor(req.TargetMinutes))
	}
	if title == "" {
		title = focusTitle(req.SelectedMuscleGroups)
	}
	items, minutes := plan.Fit(items, req.SelectedMuscleGroups, req.TargetMinutes)
	return models.PlanSynthesisResult{Title: title, Items: items, EstimatedMinutes: minutes}
}

// focusTitle derives a display title from the muscle-group focus.
func focusTitle(focus []string) string {
	if len(focus) == 0 {
		return "Full Body Workout"
	}
	parts := make([]string, 0, len(focus))
	for _, f := range focus {
		f = strings.TrimSpace(strings.ToLower(f))
		if f == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(f[:1])+f[1:])
	}
	if len(parts) == 0 {
		return "Full Body Workout"
	}
	return strings.Join(parts, " & ") + " Workout"
}
