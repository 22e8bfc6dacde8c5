package plan

import (
	"sort"
	"strings"

	"github.com/claude/fitforge/internal/models"
)

const (
	maxGrowIterations   = 20
	maxShrinkIterations = 20
	minPlanItems        = 4
)

// compoundKeywords classify an item as a multi-joint movement by name.
// Classification is name-based because parsed items carry no category.
var compoundKeywords = []string{
	"press", "squat", "deadlift", "row", "pull", "bench",
	"lunge", "clean", "snatch", "chin", "dip", "overhead",
}

func isCompoundName(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range compoundKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Fit adjusts a candidate exercise list until its estimated session time
// lands within ±10% of the target duration, or no further legal adjustment
// exists. It always terminates and always returns a structurally valid
// plan; an unreachable tolerance band is a silent best-effort outcome,
// never an error.
func Fit(candidate []models.PlanItem, focus []string, targetMinutes int) ([]models.PlanItem, int) {
	profile := ProfileFor(targetMinutes)
	groups := resolveFocus(focus)

	items := filterAndClamp(candidate, groups, profile)
	reorder(items)
	items = ensureCoverage(items, groups, profile)
	items = grow(items, groups, profile, targetMinutes)
	items = shrink(items, profile, targetMinutes)
	items = ensureFloor(items, groups, profile)

	return items, EstimateMinutes(items)
}

// filterAndClamp keeps candidate items whose name matches a focus-group
// seed, then clamps each item's set count into the profile's bounds. When
// the filter removes everything, the original candidate is kept instead.
func filterAndClamp(candidate []models.PlanItem, groups []string, profile DurationProfile) []models.PlanItem {
	var kept []models.PlanItem
	for _, it := range candidate {
		for _, g := range groups {
			if nameInGroup(it.Name, g) {
				kept = append(kept, it)
				break
			}
		}
	}
	if len(kept) == 0 {
		kept = append(kept, candidate...)
	}

	for i := range kept {
		kept[i] = clampItem(kept[i], profile)
	}
	return kept
}

// clampItem regenerates the set list at the clamped length, reusing the
// first set as the template, and clamps rest regardless of source.
func clampItem(it models.PlanItem, profile DurationProfile) models.PlanItem {
	template := models.SetSpec{RepsText: defaultRepsText}
	if len(it.Sets) > 0 {
		template = models.SetSpec{RepsText: it.Sets[0].RepsText, WeightText: it.Sets[0].WeightText}
	}
	n := clampInt(len(it.Sets), profile.MinSets, profile.MaxSets)
	if n != len(it.Sets) {
		specs := make([]models.SetSpec, n)
		for i := range specs {
			specs[i] = template
		}
		it.Sets = specs
	}
	it.RestSeconds = clampRest(it.RestSeconds)
	return it
}

// reorder sorts compound-classified items before isolation items, ties
// broken by name ascending. Compound movements open the session.
func reorder(items []models.PlanItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := isCompoundName(items[i].Name), isCompoundName(items[j].Name)
		if ci != cj {
			return ci
		}
		return items[i].Name < items[j].Name
	})
}

// ensureCoverage appends the first compound seed of every focus group that
// has no matching item yet, then restores ordering.
func ensureCoverage(items []models.PlanItem, groups []string, profile DurationProfile) []models.PlanItem {
	added := false
	for _, g := range groups {
		if hasGroupItem(items, g) {
			continue
		}
		if seeds := compoundSeeds(g); len(seeds) > 0 {
			items = append(items, materialize(seeds[0], profile.DefaultSets))
			added = true
		}
	}
	if added {
		reorder(items)
	}
	return items
}

func hasGroupItem(items []models.PlanItem, group string) bool {
	for _, it := range items {
		if nameInGroup(it.Name, group) {
			return true
		}
	}
	return false
}

// grow lengthens the session while the estimate is below the tolerance
// floor: new seeds first, then extra sets on compound items, then extra
// sets anywhere. Bounded; exits early when no legal move remains.
func grow(items []models.PlanItem, groups []string, profile DurationProfile, targetMinutes int) []models.PlanItem {
	floor := targetMinutes * 9 / 10
	for i := 0; i < maxGrowIterations; i++ {
		if EstimateMinutes(items) >= floor {
			break
		}

		if len(items) < profile.MaxExercises {
			if s, ok := nextUnusedSeed(items, groups); ok {
				items = append(items, materialize(s, profile.DefaultSets))
				reorder(items)
				continue
			}
		}

		if idx := firstGrowableItem(items, profile, true); idx >= 0 {
			items[idx].Sets = append(items[idx].Sets, items[idx].Sets[len(items[idx].Sets)-1])
			continue
		}
		if idx := firstGrowableItem(items, profile, false); idx >= 0 {
			items[idx].Sets = append(items[idx].Sets, items[idx].Sets[len(items[idx].Sets)-1])
			continue
		}
		break // no legal move
	}
	return items
}

// nextUnusedSeed scans focus groups in order, isolation seeds before
// compound within each group, skipping names already present.
func nextUnusedSeed(items []models.PlanItem, groups []string) (models.ExerciseSeed, bool) {
	for _, g := range groups {
		for _, s := range groupSeeds(g, true) {
			if !seedUsed(items, s) {
				return s, true
			}
		}
	}
	return models.ExerciseSeed{}, false
}

func seedUsed(items []models.PlanItem, s models.ExerciseSeed) bool {
	for _, it := range items {
		if nameMatchesSeed(it.Name, s.Name) {
			return true
		}
	}
	return false
}

// firstGrowableItem returns the first item below MaxSets, optionally
// restricted to compound-classified items. Returns -1 when none qualifies.
func firstGrowableItem(items []models.PlanItem, profile DurationProfile, compoundOnly bool) int {
	for i, it := range items {
		if compoundOnly && !isCompoundName(it.Name) {
			continue
		}
		if len(it.Sets) > 0 && len(it.Sets) < profile.MaxSets {
			return i
		}
	}
	return -1
}

// shrink shortens the session while the estimate exceeds the tolerance
// ceiling: trim sets from isolation items (last first), then drop the last
// isolation item, then trim sets anywhere. Bounded with early exit.
func shrink(items []models.PlanItem, profile DurationProfile, targetMinutes int) []models.PlanItem {
	ceil := (targetMinutes*11 + 9) / 10
	for i := 0; i < maxShrinkIterations; i++ {
		if EstimateMinutes(items) <= ceil {
			break
		}

		if idx := lastShrinkableIsolation(items, profile); idx >= 0 {
			items[idx].Sets = items[idx].Sets[:len(items[idx].Sets)-1]
			continue
		}

		if len(items) > profile.MinExercises {
			if idx := lastIsolationItem(items); idx >= 0 {
				items = append(items[:idx], items[idx+1:]...)
				continue
			}
		}

		if idx := lastShrinkableItem(items, profile); idx >= 0 {
			items[idx].Sets = items[idx].Sets[:len(items[idx].Sets)-1]
			continue
		}
		break // no legal move
	}
	return items
}

func lastShrinkableIsolation(items []models.PlanItem, profile DurationProfile) int {
	for i := len(items) - 1; i >= 0; i-- {
		if !isCompoundName(items[i].Name) && len(items[i].Sets) > profile.MinSets {
			return i
		}
	}
	return -1
}

func lastIsolationItem(items []models.PlanItem) int {
	for i := len(items) - 1; i >= 0; i-- {
		if !isCompoundName(items[i].Name) {
			return i
		}
	}
	return -1
}

func lastShrinkableItem(items []models.PlanItem, profile DurationProfile) int {
	for i := len(items) - 1; i >= 0; i-- {
		if len(items[i].Sets) > profile.MinSets {
			return i
		}
	}
	return -1
}

// ensureFloor appends unused focus seeds, ignoring MaxExercises, until the
// plan holds at least four exercises or the reachable library is exhausted.
func ensureFloor(items []models.PlanItem, groups []string, profile DurationProfile) []models.PlanItem {
	for len(items) < minPlanItems {
		s, ok := nextUnusedSeed(items, groups)
		if !ok {
			break
		}
		items = append(items, materialize(s, profile.DefaultSets))
	}
	return items
}
