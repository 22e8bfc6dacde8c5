package plancache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/claude/fitforge/internal/models"
	_ "modernc.org/sqlite"
)

// Cache keeps recently synthesized plans on disk so the CLI can show them
// again without re-running the generator.
type Cache struct {
	db *sql.DB
}

// CachedPlan is one stored synthesis result with its originating request.
type CachedPlan struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"`
	MuscleGroups     []string          `json:"muscle_groups"`
	TargetMinutes    int               `json:"target_minutes"`
	EstimatedMinutes int               `json:"estimated_minutes"`
	Items            []models.PlanItem `json:"items"`
	CreatedAt        time.Time         `json:"created_at"`
}

// Open opens (or creates) the SQLite plan cache at dir/plans.db.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "plans.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening plan cache: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS plans (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		title             TEXT NOT NULL,
		muscle_groups     TEXT NOT NULL,
		target_minutes    INTEGER NOT NULL,
		estimated_minutes INTEGER NOT NULL,
		items_json        TEXT NOT NULL,
		created_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating plans table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Save stores a synthesized plan together with the request that produced it.
func (c *Cache) Save(req models.GenerationRequest, result models.PlanSynthesisResult) (int64, error) {
	items, err := json.Marshal(result.Items)
	if err != nil {
		return 0, fmt.Errorf("encoding plan items: %w", err)
	}

	res, err := c.db.Exec(
		`INSERT INTO plans (title, muscle_groups, target_minutes, estimated_minutes, items_json)
		 VALUES (?, ?, ?, ?, ?)`,
		result.Title,
		strings.Join(req.SelectedMuscleGroups, ","),
		req.TargetMinutes,
		result.EstimatedMinutes,
		string(items),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting plan: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the most recently saved plans, newest first.
func (c *Cache) Recent(limit int) ([]CachedPlan, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := c.db.Query(
		`SELECT id, title, muscle_groups, target_minutes, estimated_minutes, items_json, created_at
		 FROM plans ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var plans []CachedPlan
	for rows.Next() {
		var p CachedPlan
		var groups, itemsJSON string
		if err := rows.Scan(&p.ID, &p.Title, &groups, &p.TargetMinutes, &p.EstimatedMinutes, &itemsJSON, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		if groups != "" {
			p.MuscleGroups = strings.Split(groups, ",")
		}
		if err := json.Unmarshal([]byte(itemsJSON), &p.Items); err != nil {
			return nil, fmt.Errorf("decoding plan items: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}
