package models

// Category classifies an exercise seed as a multi-joint or accessory movement.
type Category string

const (
	Compound  Category = "compound"
	Isolation Category = "isolation"
)

// ExerciseSeed is a library-owned exercise definition. Seeds are immutable;
// plans materialize copies of them as PlanItems.
type ExerciseSeed struct {
	Name                string   `json:"name"`
	Category            Category `json:"category"`
	MuscleGroup         string   `json:"muscle_group"`
	BaselineRestSeconds int      `json:"baseline_rest_seconds"`
}

// SetSpec is a placeholder set within a plan item. Reps and weight are
// free-form display strings, not validated numerics.
type SetSpec struct {
	RepsText   string `json:"reps"`
	WeightText string `json:"weight"`
	IsComplete bool   `json:"is_complete"`
}

// PlanItem is one exercise entry in a plan being built. The set list length
// changes during fitting; rest stays fixed once chosen.
type PlanItem struct {
	Name        string    `json:"name"`
	Sets        []SetSpec `json:"sets"`
	RestSeconds int       `json:"rest_seconds"`
}

// GenerationRequest carries the user's muscle-group focus and target
// duration. Read-only during fitting; an empty focus means all groups.
type GenerationRequest struct {
	SelectedMuscleGroups []string `json:"muscle_groups"`
	TargetMinutes        int      `json:"target_minutes"`
}

// PlanSynthesisResult is the engine's output. Consumers treat it as
// read-only; the item list is never mutated after return.
type PlanSynthesisResult struct {
	Title            string     `json:"title"`
	Items            []PlanItem `json:"items"`
	EstimatedMinutes int        `json:"estimated_minutes"`
}
