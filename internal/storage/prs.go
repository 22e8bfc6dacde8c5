package storage

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/claude/fitforge/internal/models"
	"github.com/jackc/pgx/v5"
)

const prMetric1RM = "estimated_1rm"

// EstimateOneRepMax applies the Epley formula, rounded to two decimals.
// Non-positive inputs yield 0.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return math.Round(weight*(1+float64(reps)/30)*100) / 100
}

// upsertPR records a new estimated-1RM personal record when value beats the
// stored best. Returns the update and whether it improved.
func (db *DB) upsertPR(ctx context.Context, exerciseName string, value float64) (models.PRUpdate, bool, error) {
	var previous float64
	err := db.Pool.QueryRow(ctx,
		`SELECT value FROM prs
		 WHERE exercise_name = $1 AND metric = $2
		 ORDER BY value DESC LIMIT 1`,
		exerciseName, prMetric1RM).Scan(&previous)

	hadPrevious := true
	if errors.Is(err, pgx.ErrNoRows) {
		hadPrevious = false
	} else if err != nil {
		return models.PRUpdate{}, false, fmt.Errorf("querying PR: %w", err)
	}

	if hadPrevious && value <= previous {
		return models.PRUpdate{}, false, nil
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO prs (exercise_name, metric, value) VALUES ($1, $2, $3)`,
		exerciseName, prMetric1RM, value)
	if err != nil {
		return models.PRUpdate{}, false, fmt.Errorf("inserting PR: %w", err)
	}

	update := models.PRUpdate{ExerciseName: exerciseName, Metric: prMetric1RM, Value: value}
	if hadPrevious {
		update.PreviousValue = &previous
	}
	return update, true, nil
}

// ExerciseHistory retrieves recent logged performances of one exercise,
// newest first, with estimated 1RM per entry.
func (db *DB) ExerciseHistory(ctx context.Context, exerciseName string, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT created_at, sets, reps, weight
		 FROM exercise_logs
		 WHERE exercise_name = $1
		 ORDER BY created_at DESC
		 LIMIT $2`, exerciseName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying exercise history: %w", err)
	}
	defer rows.Close()

	var result []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.Date, &e.Sets, &e.Reps, &e.Weight); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.Estimated1RM = EstimateOneRepMax(e.Weight, e.Reps)
		result = append(result, e)
	}
	return result, rows.Err()
}
