package models

import (
	"time"

	"github.com/google/uuid"
)

// TemplateRow is a saved workout template.
type TemplateRow struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Mode        string    `json:"mode"`
	CreatedAt   time.Time `json:"created_at"`
}

// TemplateExerciseRow is one positioned exercise within a template.
type TemplateExerciseRow struct {
	TemplateID  uuid.UUID `json:"template_id"`
	Position    int       `json:"position"`
	Name        string    `json:"name"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	RestSeconds int       `json:"rest_seconds"`
	Notes       string    `json:"notes"`
}

// SessionRow is an active or completed workout session.
type SessionRow struct {
	ID              uuid.UUID  `json:"id"`
	TemplateID      *uuid.UUID `json:"template_id,omitempty"`
	TemplateTitle   string     `json:"template_title,omitempty"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DurationSeconds int        `json:"duration_seconds"`
}

// ExerciseLogRow is one logged exercise entry within a session.
type ExerciseLogRow struct {
	ID           uuid.UUID `json:"id"`
	SessionID    uuid.UUID `json:"session_id"`
	ExerciseName string    `json:"exercise_name"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// PRUpdate reports a new personal record detected at session completion.
type PRUpdate struct {
	ExerciseName  string   `json:"exercise_name"`
	Metric        string   `json:"metric"`
	Value         float64  `json:"value"`
	PreviousValue *float64 `json:"previous_value,omitempty"`
}

// HistoryEntry is one past performance of an exercise.
type HistoryEntry struct {
	Date         time.Time `json:"date"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	Estimated1RM float64   `json:"estimated_1rm"`
}
