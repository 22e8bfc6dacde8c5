package plan

import (
	"github.com/claude/fitforge/internal/models"
)

// SelectFallback builds an exercise list straight from the library when
// parsing yielded nothing. Three passes: one compound seed per focus group,
// then one isolation seed for groups still uncovered, then a whole-library
// top-up until the profile minimum is met or the library is exhausted.
func SelectFallback(focus []string, profile DurationProfile) []models.PlanItem {
	groups := resolveFocus(focus)
	var items []models.PlanItem
	covered := make(map[string]bool)

	// Pass 1: first compound seed per group.
	for _, g := range groups {
		if seeds := compoundSeeds(g); len(seeds) > 0 {
			items = appendSeed(items, seeds[0], profile.DefaultSets)
			covered[g] = true
		}
	}

	// Pass 2: first isolation seed for groups that contributed nothing.
	if len(items) < profile.MinExercises {
		for _, g := range groups {
			if covered[g] {
				continue
			}
			if seeds := isolationSeeds(g); len(seeds) > 0 {
				items = appendSeed(items, seeds[0], profile.DefaultSets)
				covered[g] = true
			}
		}
	}

	// Pass 3: flatten the entire library until the minimum is met.
	if len(items) < profile.MinExercises {
		for _, s := range CatalogSeeds() {
			if len(items) >= profile.MinExercises {
				break
			}
			items = appendSeed(items, s, profile.DefaultSets)
		}
	}

	return items
}

// appendSeed materializes a seed as a plan item unless its name is already
// present. Selection stays dedup-aware across all passes.
func appendSeed(items []models.PlanItem, s models.ExerciseSeed, sets int) []models.PlanItem {
	for _, it := range items {
		if nameMatchesSeed(it.Name, s.Name) {
			return items
		}
	}
	return append(items, materialize(s, sets))
}

// materialize turns a library seed into a mutable plan item.
func materialize(s models.ExerciseSeed, sets int) models.PlanItem {
	if sets < 1 {
		sets = 1
	}
	specs := make([]models.SetSpec, sets)
	for i := range specs {
		specs[i] = models.SetSpec{RepsText: defaultRepsText}
	}
	return models.PlanItem{Name: s.Name, Sets: specs, RestSeconds: clampRest(s.BaselineRestSeconds)}
}
