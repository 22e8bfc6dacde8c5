package plan

import (
	"testing"
)

// TestParseJSONObject verifies whole-string structured decode with field
// aliases and per-record defaulting.
func TestParseJSONObject(t *testing.T) {
	raw := `{"title":"Push Day","exercises":[
		{"name":"Bench Press","sets":4,"reps":8,"restSeconds":120},
		{"exercise":"Overhead Press","reps":10,"rest":60},
		{"name":"   "}
	]}`

	title, items := Parse(raw)
	if title != "Push Day" {
		t.Errorf("title = %q, want %q", title, "Push Day")
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 (blank-name record discarded)", len(items))
	}

	if items[0].Name != "Bench Press" {
		t.Errorf("items[0].Name = %q, want Bench Press", items[0].Name)
	}
	if len(items[0].Sets) != 4 {
		t.Errorf("items[0] sets = %d, want 4", len(items[0].Sets))
	}
	if items[0].Sets[0].RepsText != "8" {
		t.Errorf("items[0] reps = %q, want 8", items[0].Sets[0].RepsText)
	}
	if items[0].RestSeconds != 120 {
		t.Errorf("items[0] rest = %d, want 120", items[0].RestSeconds)
	}

	// Alias fields plus defaults: sets absent -> 3, rest alias honored.
	if items[1].Name != "Overhead Press" {
		t.Errorf("items[1].Name = %q, want Overhead Press", items[1].Name)
	}
	if len(items[1].Sets) != 3 {
		t.Errorf("items[1] sets = %d, want 3 (default)", len(items[1].Sets))
	}
	if items[1].RestSeconds != 60 {
		t.Errorf("items[1] rest = %d, want 60", items[1].RestSeconds)
	}
}

// TestParseBareArray verifies the generator's alternate top-level shape.
func TestParseBareArray(t *testing.T) {
	title, items := Parse(`[{"name":"Back Squat","sets":5,"reps":5}]`)
	if title != DefaultTitle {
		t.Errorf("title = %q, want %q", title, DefaultTitle)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if len(items[0].Sets) != 5 || items[0].Sets[0].RepsText != "5" {
		t.Errorf("got %d sets of %q reps, want 5 sets of 5", len(items[0].Sets), items[0].Sets[0].RepsText)
	}
	if items[0].RestSeconds != 90 {
		t.Errorf("rest = %d, want 90 (default)", items[0].RestSeconds)
	}
}

// TestParseEmbeddedJSON verifies decode of the substring between the
// outermost braces when the generator wraps JSON in prose.
func TestParseEmbeddedJSON(t *testing.T) {
	raw := "Here is your plan:\n{\"title\":\"Legs\",\"exercises\":[{\"name\":\"Leg Press\",\"sets\":3,\"reps\":12}]}\nEnjoy!"
	title, items := Parse(raw)
	if title != "Legs" {
		t.Errorf("title = %q, want Legs", title)
	}
	if len(items) != 1 || items[0].Name != "Leg Press" {
		t.Fatalf("items = %+v, want one Leg Press", items)
	}
}

// TestParseLineBased verifies the free-text fallback: "Bench Press 4x8"
// and "Squat 3x10 rest 120" must both round-trip sets, reps, and rest.
func TestParseLineBased(t *testing.T) {
	title, items := Parse("Bench Press 4x8\nSquat 3x10 rest 120")
	if title != DefaultTitle {
		t.Errorf("title = %q, want %q", title, DefaultTitle)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	if items[0].Name != "Bench Press" {
		t.Errorf("items[0].Name = %q, want Bench Press", items[0].Name)
	}
	if len(items[0].Sets) != 4 || items[0].Sets[0].RepsText != "8" {
		t.Errorf("items[0] = %d sets of %q, want 4 sets of 8", len(items[0].Sets), items[0].Sets[0].RepsText)
	}
	if items[0].RestSeconds != 90 {
		t.Errorf("items[0] rest = %d, want 90 (default)", items[0].RestSeconds)
	}

	if items[1].Name != "Squat" {
		t.Errorf("items[1].Name = %q, want Squat", items[1].Name)
	}
	if len(items[1].Sets) != 3 || items[1].Sets[0].RepsText != "10" {
		t.Errorf("items[1] = %d sets of %q, want 3 sets of 10", len(items[1].Sets), items[1].Sets[0].RepsText)
	}
	if items[1].RestSeconds != 120 {
		t.Errorf("items[1] rest = %d, want 120", items[1].RestSeconds)
	}
}

// TestParseLineVariants covers bullets, unicode multiplication signs,
// "sets of" phrasing, rest-before phrasing, and separator-derived names.
func TestParseLineVariants(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantSets int
		wantReps string
		wantRest int
	}{
		{"- Incline Dumbbell Press 3 × 10", "Incline Dumbbell Press", 3, "10", 90},
		{"* Barbell Row 4*6", "Barbell Row", 4, "6", 90},
		{"• Lat Pulldown 4 sets of 12", "Lat Pulldown", 4, "12", 90},
		{"2. Overhead Press 3x8 60 secs rest", "Overhead Press", 3, "8", 60},
		{"Deadlift - heavy triples", "Deadlift", 3, "10", 90},
		{"Face Pull: light pump work", "Face Pull", 3, "10", 90},
	}

	for _, tt := range tests {
		_, items := Parse(tt.line)
		if len(items) != 1 {
			t.Errorf("%q: items = %d, want 1", tt.line, len(items))
			continue
		}
		it := items[0]
		if it.Name != tt.wantName {
			t.Errorf("%q: name = %q, want %q", tt.line, it.Name, tt.wantName)
		}
		if len(it.Sets) != tt.wantSets {
			t.Errorf("%q: sets = %d, want %d", tt.line, len(it.Sets), tt.wantSets)
		}
		if it.Sets[0].RepsText != tt.wantReps {
			t.Errorf("%q: reps = %q, want %q", tt.line, it.Sets[0].RepsText, tt.wantReps)
		}
		if it.RestSeconds != tt.wantRest {
			t.Errorf("%q: rest = %d, want %d", tt.line, it.RestSeconds, tt.wantRest)
		}
	}
}

// TestParseSkipsNoiseLines verifies metadata lines never become exercises.
func TestParseSkipsNoiseLines(t *testing.T) {
	raw := "Bench Press 3x10\nrest: 90\nREST_SECONDS: 60\nSets: 4\nreps: 10\nrest seconds 45"
	_, items := Parse(raw)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1 (noise lines skipped)", len(items))
	}
	if items[0].Name != "Bench Press" {
		t.Errorf("name = %q, want Bench Press", items[0].Name)
	}
}

// TestParseClamps verifies sets clamp to [1,6] and rest to [30,150].
func TestParseClamps(t *testing.T) {
	_, items := Parse("Hammer Curl 9x100\nPec Deck 2x8 rest 999\nPlank 2x1 rest 5")
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	if len(items[0].Sets) != 6 {
		t.Errorf("sets = %d, want 6 (clamped)", len(items[0].Sets))
	}
	if items[0].Sets[0].RepsText != "100" {
		t.Errorf("reps = %q, want 100 (free-form, not validated)", items[0].Sets[0].RepsText)
	}
	if items[1].RestSeconds != 150 {
		t.Errorf("rest = %d, want 150 (clamped)", items[1].RestSeconds)
	}
	if items[2].RestSeconds != 30 {
		t.Errorf("rest = %d, want 30 (clamped)", items[2].RestSeconds)
	}
}

// TestParseNeverFails verifies degenerate inputs yield an empty list, not a
// panic or error.
func TestParseNeverFails(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n\n", "{", "{}", "[]", "rest: 90\nsets: 3"} {
		_, items := Parse(raw)
		if len(items) != 0 {
			t.Errorf("Parse(%q) items = %d, want 0", raw, len(items))
		}
	}
}
