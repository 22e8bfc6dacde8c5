package plan

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/fitforge/internal/models"
)

// DefaultTitle labels parsed plans whose source carried no title.
const DefaultTitle = "Generated Workout"

const (
	defaultSets        = 3
	defaultRepsText    = "10"
	defaultRestSeconds = 90
	minRestSeconds     = 30
	maxRestSeconds     = 150
)

var (
	// setsRepsRe matches: "4x8", "4 × 8", "3 * 10"
	setsRepsRe = regexp.MustCompile(`(?i)(\d+)\s*[x×*]\s*(\d+)`)

	// setsOfRe matches: "4 sets of 8", "3 set 10"
	setsOfRe = regexp.MustCompile(`(?i)(\d+)\s+sets?\s+(?:of\s+)?(\d+)`)

	// restAfterRe matches: "rest 120", "rest: 90"
	restAfterRe = regexp.MustCompile(`(?i)\brest\b\s*:?\s*(\d+)`)

	// restBeforeRe matches: "120 sec rest", "90 seconds rest", "60 secs rest"
	restBeforeRe = regexp.MustCompile(`(?i)(\d+)\s*sec(?:ond)?s?\s+rest\b`)

	// bulletRe strips leading bullet markers and ordinals: "- ", "• ", "* ", "1. "
	bulletRe = regexp.MustCompile(`^\s*(?:[-•*]|\d+[.)])\s*`)
)

// noisePrefixes mark lines that carry plan metadata rather than an exercise.
var noisePrefixes = []string{"rest_seconds", "rest:", "reps:", "sets:", "rest seconds"}

// rawExercise is the loosely-structured record the generator emits. Field
// aliases (name/exercise, restSeconds/rest) are reconciled in toPlanItem.
type rawExercise struct {
	Name        string `json:"name"`
	Exercise    string `json:"exercise"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
	Rest        int    `json:"rest"`
	Notes       string `json:"notes"`
}

// rawPlan is the generator's top-level JSON shape.
type rawPlan struct {
	Title     string        `json:"title"`
	Exercises []rawExercise `json:"exercises"`
}

// Parse converts the generator's free text or JSON into a best-effort
// ordered exercise list. It never fails: unparseable input yields an empty
// item list, and the caller falls back to library selection.
//
// Strategies are tried in order, short-circuiting on first success:
// whole-string JSON, JSON substring between the outermost braces, then
// line-based heuristics.
func Parse(raw string) (title string, items []models.PlanItem) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if title, items, ok := parseJSON(raw); ok {
		return title, items
	}
	if title, items, ok := parseEmbeddedJSON(raw); ok {
		return title, items
	}

	items = parseLines(raw)
	if len(items) == 0 {
		return "", nil
	}
	return DefaultTitle, items
}

// parseJSON attempts a whole-string structured decode: either an object
// with a title and exercises array, or a bare array of exercise records.
func parseJSON(raw string) (string, []models.PlanItem, bool) {
	var p rawPlan
	if err := json.Unmarshal([]byte(raw), &p); err == nil && len(p.Exercises) > 0 {
		items := mapExercises(p.Exercises)
		if len(items) > 0 {
			return orDefaultTitle(p.Title), items, true
		}
	}

	var bare []rawExercise
	if err := json.Unmarshal([]byte(raw), &bare); err == nil && len(bare) > 0 {
		items := mapExercises(bare)
		if len(items) > 0 {
			return DefaultTitle, items, true
		}
	}
	return "", nil, false
}

// parseEmbeddedJSON retries the structured decode on the substring between
// the first '{' and last '}' — generators often wrap JSON in prose.
func parseEmbeddedJSON(raw string) (string, []models.PlanItem, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", nil, false
	}
	return parseJSON(raw[start : end+1])
}

// parseLines falls back to newline-split heuristics, one exercise per line.
func parseLines(raw string) []models.PlanItem {
	var items []models.PlanItem
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = bulletRe.ReplaceAllString(line, "")
		if line == "" || isNoiseLine(line) {
			continue
		}
		if item, ok := parseLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}

func isNoiseLine(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range noisePrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// parseLine extracts sets/reps and rest patterns from a line and derives the
// exercise name from what remains.
func parseLine(line string) (models.PlanItem, bool) {
	var sets, reps, rest int
	var spans [][]int

	if m := setsRepsRe.FindStringSubmatchIndex(line); m != nil {
		sets, _ = strconv.Atoi(line[m[2]:m[3]])
		reps, _ = strconv.Atoi(line[m[4]:m[5]])
		spans = append(spans, []int{m[0], m[1]})
	} else if m := setsOfRe.FindStringSubmatchIndex(line); m != nil {
		sets, _ = strconv.Atoi(line[m[2]:m[3]])
		reps, _ = strconv.Atoi(line[m[4]:m[5]])
		spans = append(spans, []int{m[0], m[1]})
	}

	if m := restAfterRe.FindStringSubmatchIndex(line); m != nil {
		rest, _ = strconv.Atoi(line[m[2]:m[3]])
		spans = append(spans, []int{m[0], m[1]})
	} else if m := restBeforeRe.FindStringSubmatchIndex(line); m != nil {
		rest, _ = strconv.Atoi(line[m[2]:m[3]])
		spans = append(spans, []int{m[0], m[1]})
	}

	var name string
	if len(spans) > 0 {
		name = removeSpans(line, spans)
	} else {
		name = splitOnSeparator(line)
	}
	name = trimName(name)
	if name == "" {
		return models.PlanItem{}, false
	}

	repsText := defaultRepsText
	if reps > 0 {
		repsText = strconv.Itoa(reps)
	}
	return buildItem(name, sets, repsText, rest), true
}

// removeSpans blanks the matched numeric spans out of the line.
func removeSpans(line string, spans [][]int) string {
	out := []byte(line)
	for _, sp := range spans {
		for i := sp[0]; i < sp[1]; i++ {
			out[i] = ' '
		}
	}
	return string(out)
}

// separators split a descriptive line into name and detail, in source order.
var separators = []string{" - ", " – ", " — ", ": "}

func splitOnSeparator(line string) string {
	for _, sep := range separators {
		if i := strings.Index(line, sep); i >= 0 {
			return line[:i]
		}
	}
	return line
}

func trimName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " -–—:•*,.{}[]\"")
}

// mapExercises converts decoded records to plan items, discarding records
// with empty names.
func mapExercises(records []rawExercise) []models.PlanItem {
	var items []models.PlanItem
	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			name = strings.TrimSpace(r.Exercise)
		}
		if name == "" {
			continue
		}
		repsText := defaultRepsText
		if r.Reps > 0 {
			repsText = strconv.Itoa(r.Reps)
		}
		rest := r.RestSeconds
		if rest == 0 {
			rest = r.Rest
		}
		items = append(items, buildItem(name, r.Sets, repsText, rest))
	}
	return items
}

// buildItem applies the defaulting and clamping rules shared by the
// structured and line-based paths.
func buildItem(name string, sets int, repsText string, rest int) models.PlanItem {
	if sets <= 0 {
		sets = defaultSets
	}
	sets = clampInt(sets, 1, 6)
	if rest <= 0 {
		rest = defaultRestSeconds
	}
	rest = clampRest(rest)

	specs := make([]models.SetSpec, sets)
	for i := range specs {
		specs[i] = models.SetSpec{RepsText: repsText}
	}
	return models.PlanItem{Name: name, Sets: specs, RestSeconds: rest}
}

func clampRest(rest int) int {
	return clampInt(rest, minRestSeconds, maxRestSeconds)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func orDefaultTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultTitle
	}
	return title
}
