package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/fitforge/internal/models"
	"github.com/google/uuid"
)

// StartSession creates a new in-progress session, optionally tied to a
// template.
func (db *DB) StartSession(ctx context.Context, templateID *uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_sessions (id, template_id, status, started_at)
		 VALUES ($1, $2, 'in_progress', $3)`,
		id, templateID, time.Now().UTC())
	if err != nil {
		return uuid.Nil, fmt.Errorf("starting session: %w", err)
	}
	return id, nil
}

// ListSessions retrieves the most recent sessions with template titles.
func (db *DB) ListSessions(ctx context.Context, limit int) ([]models.SessionRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.template_id, COALESCE(t.title, ''), s.status, s.started_at, s.completed_at, s.duration_seconds
		 FROM workout_sessions s
		 LEFT JOIN workout_templates t ON t.id = s.template_id
		 ORDER BY s.started_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []models.SessionRow
	for rows.Next() {
		var s models.SessionRow
		if err := rows.Scan(&s.ID, &s.TemplateID, &s.TemplateTitle, &s.Status, &s.StartedAt, &s.CompletedAt, &s.DurationSeconds); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// InsertExerciseLog records one logged exercise within a session.
func (db *DB) InsertExerciseLog(ctx context.Context, row models.ExerciseLogRow) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO exercise_logs (id, session_id, exercise_name, sets, reps, weight, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, row.SessionID, row.ExerciseName, row.Sets, row.Reps, row.Weight, row.Notes)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting exercise log: %w", err)
	}
	return id, nil
}

// SessionLogs retrieves a session's logged exercises in log order.
func (db *DB) SessionLogs(ctx context.Context, sessionID uuid.UUID) ([]models.ExerciseLogRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, session_id, exercise_name, sets, reps, weight, notes, created_at
		 FROM exercise_logs
		 WHERE session_id = $1
		 ORDER BY created_at ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying session logs: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseLogRow
	for rows.Next() {
		var l models.ExerciseLogRow
		if err := rows.Scan(&l.ID, &l.SessionID, &l.ExerciseName, &l.Sets, &l.Reps, &l.Weight, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning exercise log: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

// CompleteSession marks a session finished and upserts any personal records
// its logs establish. Returns the PR improvements, which may be empty.
func (db *DB) CompleteSession(ctx context.Context, sessionID uuid.UUID, durationSeconds int) ([]models.PRUpdate, error) {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE workout_sessions
		 SET status = 'completed', duration_seconds = $2, completed_at = $3
		 WHERE id = $1`,
		sessionID, durationSeconds, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("completing session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}

	logs, err := db.SessionLogs(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Best estimated 1RM per exercise across this session's logs.
	best := make(map[string]float64)
	var order []string
	for _, l := range logs {
		est := EstimateOneRepMax(l.Weight, l.Reps)
		if est <= 0 {
			continue
		}
		if _, seen := best[l.ExerciseName]; !seen {
			order = append(order, l.ExerciseName)
		}
		if est > best[l.ExerciseName] {
			best[l.ExerciseName] = est
		}
	}

	var updates []models.PRUpdate
	for _, name := range order {
		update, improved, err := db.upsertPR(ctx, name, best[name])
		if err != nil {
			return nil, err
		}
		if improved {
			updates = append(updates, update)
		}
	}
	return updates, nil
}
