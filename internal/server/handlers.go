package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/claude/fitforge/internal/models"
	"github.com/claude/fitforge/internal/plan"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req models.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.TargetMinutes <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "target_minutes must be positive"})
		return
	}

	result := s.synth.Synthesize(r.Context(), req)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleExerciseCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"muscle_groups": plan.MuscleGroups(),
		"exercises":     plan.CatalogSeeds(),
	})
}

func (s *Server) handleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := s.db.ExerciseHistory(r.Context(), name, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	var best *models.HistoryEntry
	for i := range entries {
		if best == nil || entries[i].Estimated1RM > best.Estimated1RM {
			best = &entries[i]
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"exercise_name": name,
		"entries":       entries,
		"best_set":      best,
	})
}

// templatePayload is the request body for creating and updating templates.
type templatePayload struct {
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	Mode        string                       `json:"mode"`
	Exercises   []models.TemplateExerciseRow `json:"exercises"`
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var payload templatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if payload.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title required"})
		return
	}
	if payload.Mode == "" {
		payload.Mode = "manual"
	}

	id, err := s.db.InsertTemplate(r.Context(), models.TemplateRow{
		Title:       payload.Title,
		Description: payload.Description,
		Mode:        payload.Mode,
	}, payload.Exercises)
	if err != nil {
		s.log.Error("create template", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"template_id": id.String()})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.db.ListTemplates(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": templates})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	detail, err := s.db.GetTemplate(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var payload templatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if payload.Mode == "" {
		payload.Mode = "manual"
	}

	err := s.db.UpdateTemplate(r.Context(), models.TemplateRow{
		ID:          id,
		Title:       payload.Title,
		Description: payload.Description,
		Mode:        payload.Mode,
	}, payload.Exercises)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"template_id": id.String()})
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteTemplate(r.Context(), id); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"template_id": id.String()})
}

func (s *Server) handleDuplicateTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var payload struct {
		Title string `json:"title"`
	}
	json.NewDecoder(r.Body).Decode(&payload) //nolint:errcheck // empty body is fine

	newID, err := s.db.DuplicateTemplate(r.Context(), id, payload.Title)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"template_id": newID.String()})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TemplateID *uuid.UUID `json:"template_id"`
	}
	json.NewDecoder(r.Body).Decode(&payload) //nolint:errcheck // empty body is fine

	id, err := s.db.StartSession(r.Context(), payload.TemplateID)
	if err != nil {
		s.log.Error("start session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"session_id": id.String()})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	sessions, err := s.db.ListSessions(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
}

func (s *Server) handleLogExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var payload models.ExerciseLogRow
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if payload.ExerciseName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise_name required"})
		return
	}
	payload.SessionID = id

	logID, err := s.db.InsertExerciseLog(r.Context(), payload)
	if err != nil {
		s.log.Error("log exercise", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"log_id": logID.String()})
}

func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var payload struct {
		DurationSeconds int `json:"duration_seconds"`
	}
	json.NewDecoder(r.Body).Decode(&payload) //nolint:errcheck // empty body is fine

	prs, err := s.db.CompleteSession(r.Context(), id, payload.DurationSeconds)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": id.String(),
		"status":     "completed",
		"prs":        prs,
	})
}

func (s *Server) handleSessionLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	logs, err := s.db.SessionLogs(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session_id": id.String(), "logs": logs})
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
