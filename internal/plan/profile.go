package plan

// DurationProfile bounds the structure of a plan for one target-duration
// bucket: how many exercises it may hold and how many sets each may carry.
type DurationProfile struct {
	MinExercises int
	MaxExercises int
	MinSets      int
	MaxSets      int
	DefaultSets  int
}

// profiles maps target-duration buckets (minutes) to structural limits.
var profiles = map[int]DurationProfile{
	20: {MinExercises: 4, MaxExercises: 5, MinSets: 2, MaxSets: 3, DefaultSets: 2},
	30: {MinExercises: 4, MaxExercises: 6, MinSets: 2, MaxSets: 3, DefaultSets: 3},
	45: {MinExercises: 5, MaxExercises: 7, MinSets: 3, MaxSets: 4, DefaultSets: 3},
	60: {MinExercises: 6, MaxExercises: 8, MinSets: 3, MaxSets: 4, DefaultSets: 3},
	75: {MinExercises: 6, MaxExercises: 9, MinSets: 3, MaxSets: 5, DefaultSets: 4},
	90: {MinExercises: 7, MaxExercises: 10, MinSets: 3, MaxSets: 5, DefaultSets: 4},
}

// defaultProfile covers target durations outside the known buckets.
// Conservative large-session limits.
var defaultProfile = DurationProfile{MinExercises: 6, MaxExercises: 10, MinSets: 3, MaxSets: 5, DefaultSets: 3}

// ProfileFor resolves the structural limits for a target duration.
func ProfileFor(targetMinutes int) DurationProfile {
	if p, ok := profiles[targetMinutes]; ok {
		return p
	}
	return defaultProfile
}
