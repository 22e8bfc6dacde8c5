package storage

import (
	"context"
	"fmt"

	"github.com/claude/fitforge/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TemplateDetail is a template with its ordered exercises.
type TemplateDetail struct {
	models.TemplateRow
	Exercises []models.TemplateExerciseRow `json:"exercises"`
}

// InsertTemplate inserts a template and its exercises in one transaction.
func (db *DB) InsertTemplate(ctx context.Context, row models.TemplateRow, exercises []models.TemplateExerciseRow) (uuid.UUID, error) {
	id := row.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`INSERT INTO workout_templates (id, title, description, mode)
		 VALUES ($1, $2, $3, $4)`,
		id, row.Title, row.Description, row.Mode)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting template: %w", err)
	}

	if err := insertTemplateExercises(ctx, tx, id, exercises); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("committing template: %w", err)
	}
	return id, nil
}

func insertTemplateExercises(ctx context.Context, tx pgx.Tx, templateID uuid.UUID, exercises []models.TemplateExerciseRow) error {
	for i, ex := range exercises {
		_, err := tx.Exec(ctx,
			`INSERT INTO workout_template_exercises (template_id, position, name, sets, reps, rest_seconds, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			templateID, i, ex.Name, ex.Sets, ex.Reps, ex.RestSeconds, ex.Notes)
		if err != nil {
			return fmt.Errorf("inserting template exercise %d: %w", i, err)
		}
	}
	return nil
}

// ListTemplates retrieves all templates, newest first.
func (db *DB) ListTemplates(ctx context.Context) ([]models.TemplateRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, title, description, mode, created_at
		 FROM workout_templates
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var result []models.TemplateRow
	for rows.Next() {
		var t models.TemplateRow
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Mode, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// GetTemplate retrieves a single template with its ordered exercises.
func (db *DB) GetTemplate(ctx context.Context, id uuid.UUID) (*TemplateDetail, error) {
	var t models.TemplateRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, title, description, mode, created_at
		 FROM workout_templates WHERE id = $1`, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Mode, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying template: %w", err)
	}

	detail := &TemplateDetail{TemplateRow: t}

	rows, err := db.Pool.Query(ctx,
		`SELECT template_id, position, name, sets, reps, rest_seconds, notes
		 FROM workout_template_exercises
		 WHERE template_id = $1
		 ORDER BY position ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("querying template exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ex models.TemplateExerciseRow
		if err := rows.Scan(&ex.TemplateID, &ex.Position, &ex.Name, &ex.Sets, &ex.Reps, &ex.RestSeconds, &ex.Notes); err != nil {
			return nil, fmt.Errorf("scanning template exercise: %w", err)
		}
		detail.Exercises = append(detail.Exercises, ex)
	}
	return detail, rows.Err()
}

// UpdateTemplate replaces a template's fields and exercise list.
func (db *DB) UpdateTemplate(ctx context.Context, row models.TemplateRow, exercises []models.TemplateExerciseRow) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx,
		`UPDATE workout_templates SET title = $2, description = $3, mode = $4 WHERE id = $1`,
		row.ID, row.Title, row.Description, row.Mode)
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM workout_template_exercises WHERE template_id = $1`, row.ID); err != nil {
		return fmt.Errorf("clearing template exercises: %w", err)
	}
	if err := insertTemplateExercises(ctx, tx, row.ID, exercises); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing template update: %w", err)
	}
	return nil
}

// DeleteTemplate removes a template and its exercises (cascade).
func (db *DB) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM workout_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DuplicateTemplate copies a template and its exercises under a new ID.
// An empty title defaults to "<original> Copy".
func (db *DB) DuplicateTemplate(ctx context.Context, id uuid.UUID, title string) (uuid.UUID, error) {
	src, err := db.GetTemplate(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if title == "" {
		title = src.Title + " Copy"
	}
	copyRow := models.TemplateRow{
		Title:       title,
		Description: src.Description,
		Mode:        src.Mode,
	}
	return db.InsertTemplate(ctx, copyRow, src.Exercises)
}
