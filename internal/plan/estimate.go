package plan

import (
	"math"

	"github.com/claude/fitforge/internal/models"
)

const (
	warmupSeconds     = 300 // fixed 5-minute warm-up
	secondsPerSet     = 45
	transitionSeconds = 35 // moving between stations
)

// EstimateMinutes converts an ordered exercise list into estimated session
// minutes: warm-up, working time per set, rest between sets of the same
// exercise, and transitions between exercises. Empty input yields 0.
func EstimateMinutes(items []models.PlanItem) int {
	if len(items) == 0 {
		return 0
	}
	total := warmupSeconds
	for _, it := range items {
		sets := len(it.Sets)
		total += sets * secondsPerSet
		if sets > 1 {
			total += (sets - 1) * it.RestSeconds
		}
	}
	total += transitionSeconds * (len(items) - 1)
	return int(math.Round(float64(total) / 60))
}
