package plan

import (
	"strings"

	"github.com/claude/fitforge/internal/models"
)

// pool holds the ordered seeds for one muscle group, compound first.
type pool struct {
	Compound  []models.ExerciseSeed
	Isolation []models.ExerciseSeed
}

// groupOrder fixes the stable iteration order over the catalog.
var groupOrder = []string{"chest", "back", "legs", "shoulders", "arms", "core"}

func seed(name string, cat models.Category, group string, rest int) models.ExerciseSeed {
	return models.ExerciseSeed{Name: name, Category: cat, MuscleGroup: group, BaselineRestSeconds: rest}
}

// catalog is process-wide read-only configuration data. Seed order within
// each pool matters: the fallback selector and coverage pass always take the
// first seed of a pool.
var catalog = map[string]pool{
	"chest": {
		Compound: []models.ExerciseSeed{
			seed("Bench Press", models.Compound, "chest", 90),
			seed("Incline Dumbbell Press", models.Compound, "chest", 90),
			seed("Weighted Dip", models.Compound, "chest", 90),
		},
		Isolation: []models.ExerciseSeed{
			seed("Dumbbell Fly", models.Isolation, "chest", 60),
			seed("Cable Crossover", models.Isolation, "chest", 60),
			seed("Pec Deck", models.Isolation, "chest", 60),
		},
	},
	"back": {
		Compound: []models.ExerciseSeed{
			seed("Lat Pulldown", models.Compound, "back", 90),
			seed("Barbell Row", models.Compound, "back", 90),
			seed("Pull-Up", models.Compound, "back", 90),
			seed("Seated Cable Row", models.Compound, "back", 75),
		},
		Isolation: []models.ExerciseSeed{
			seed("Straight-Arm Pulldown", models.Isolation, "back", 60),
			seed("Face Pull", models.Isolation, "back", 60),
		},
	},
	"legs": {
		Compound: []models.ExerciseSeed{
			seed("Back Squat", models.Compound, "legs", 120),
			seed("Romanian Deadlift", models.Compound, "legs", 120),
			seed("Leg Press", models.Compound, "legs", 90),
			seed("Walking Lunge", models.Compound, "legs", 90),
		},
		Isolation: []models.ExerciseSeed{
			seed("Leg Extension", models.Isolation, "legs", 60),
			seed("Leg Curl", models.Isolation, "legs", 60),
			seed("Standing Calf Raise", models.Isolation, "legs", 45),
		},
	},
	"shoulders": {
		Compound: []models.ExerciseSeed{
			seed("Overhead Press", models.Compound, "shoulders", 90),
			seed("Arnold Press", models.Compound, "shoulders", 90),
		},
		Isolation: []models.ExerciseSeed{
			seed("Lateral Raise", models.Isolation, "shoulders", 45),
			seed("Rear Delt Fly", models.Isolation, "shoulders", 45),
			seed("Front Raise", models.Isolation, "shoulders", 45),
		},
	},
	"arms": {
		Compound: []models.ExerciseSeed{
			seed("Close-Grip Bench Press", models.Compound, "arms", 90),
			seed("Chin-Up", models.Compound, "arms", 90),
		},
		Isolation: []models.ExerciseSeed{
			seed("Barbell Curl", models.Isolation, "arms", 60),
			seed("Triceps Pushdown", models.Isolation, "arms", 60),
			seed("Hammer Curl", models.Isolation, "arms", 60),
			seed("Skull Crusher", models.Isolation, "arms", 60),
		},
	},
	"core": {
		Compound: []models.ExerciseSeed{
			seed("Hanging Leg Raise", models.Compound, "core", 60),
		},
		Isolation: []models.ExerciseSeed{
			seed("Cable Crunch", models.Isolation, "core", 45),
			seed("Plank", models.Isolation, "core", 45),
		},
	},
}

// MuscleGroups returns the catalog's muscle groups in stable order.
func MuscleGroups() []string {
	out := make([]string, len(groupOrder))
	copy(out, groupOrder)
	return out
}

// CatalogSeeds returns every seed in the library, grouped and ordered:
// all compound seeds in group order, then all isolation seeds.
func CatalogSeeds() []models.ExerciseSeed {
	var seeds []models.ExerciseSeed
	for _, g := range groupOrder {
		seeds = append(seeds, catalog[g].Compound...)
	}
	for _, g := range groupOrder {
		seeds = append(seeds, catalog[g].Isolation...)
	}
	return seeds
}

// compoundSeeds returns the ordered compound pool for a group.
func compoundSeeds(group string) []models.ExerciseSeed {
	return catalog[normalizeGroup(group)].Compound
}

// isolationSeeds returns the ordered isolation pool for a group.
func isolationSeeds(group string) []models.ExerciseSeed {
	return catalog[normalizeGroup(group)].Isolation
}

// groupSeeds returns a group's seeds, isolation before compound when
// isolationFirst is set (the grow loop's scan order).
func groupSeeds(group string, isolationFirst bool) []models.ExerciseSeed {
	p := catalog[normalizeGroup(group)]
	var seeds []models.ExerciseSeed
	if isolationFirst {
		seeds = append(seeds, p.Isolation...)
		seeds = append(seeds, p.Compound...)
	} else {
		seeds = append(seeds, p.Compound...)
		seeds = append(seeds, p.Isolation...)
	}
	return seeds
}

func normalizeGroup(group string) string {
	return strings.ToLower(strings.TrimSpace(group))
}

// resolveFocus maps a user focus to catalog groups. An empty focus means all
// groups; otherwise the caller's order is kept, deduplicated, with unknown
// tokens dropped.
func resolveFocus(focus []string) []string {
	if len(focus) == 0 {
		return MuscleGroups()
	}
	var groups []string
	seen := make(map[string]bool)
	for _, f := range focus {
		g := normalizeGroup(f)
		if seen[g] {
			continue
		}
		if _, ok := catalog[g]; ok {
			groups = append(groups, g)
			seen[g] = true
		}
	}
	if len(groups) == 0 {
		return MuscleGroups()
	}
	return groups
}

// nameMatchesSeed reports whether an item name refers to a seed. Generator
// output often decorates names ("Barbell Bench Press"), so containment in
// either direction counts as a match.
func nameMatchesSeed(itemName, seedName string) bool {
	a := strings.ToLower(strings.TrimSpace(itemName))
	b := strings.ToLower(strings.TrimSpace(seedName))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// nameInGroup reports whether an item name matches any seed in the group.
func nameInGroup(itemName, group string) bool {
	p := catalog[normalizeGroup(group)]
	for _, s := range p.Compound {
		if nameMatchesSeed(itemName, s.Name) {
			return true
		}
	}
	for _, s := range p.Isolation {
		if nameMatchesSeed(itemName, s.Name) {
			return true
		}
	}
	return false
}
