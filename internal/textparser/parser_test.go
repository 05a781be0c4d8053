package textparser

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/spigell/resume-import/internal/resume"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestParseEndToEnd(t *testing.T) {
	input := "John Smith\njohn@x.com | 555-123-4567\n\nSummary\nBuilds things.\n\nSkills\n- Go\n- Rust\n"

	got := Parse(input)

	info := got.PersonalInfo
	if info.FirstName != "John" || info.LastName != "Smith" {
		t.Fatalf("unexpected name: %q %q", info.FirstName, info.LastName)
	}
	if info.Email != "john@x.com" {
		t.Fatalf("unexpected email: %q", info.Email)
	}
	if info.Phone != "555-123-4567" {
		t.Fatalf("unexpected phone: %q", info.Phone)
	}
	if got.Summary != "Builds things." {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}

	if len(got.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %+v", got.Skills)
	}
	for i, name := range []string{"Go", "Rust"} {
		skill := got.Skills[i]
		if skill.Name != name {
			t.Fatalf("expected skill %q, got %q", name, skill.Name)
		}
		if skill.Level != resume.LevelIntermediate || skill.Category != resume.CategoryTechnical {
			t.Fatalf("unexpected defaults: %+v", skill)
		}
		if skill.ID == "" {
			t.Fatalf("expected generated id for %q", name)
		}
	}
}

func TestParseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		first string
		last  string
	}{
		{name: "two tokens", input: "Jane Doe", first: "Jane", last: "Doe"},
		{name: "single token", input: "Cher", first: "Cher", last: ""},
		{name: "several tokens", input: "Mary Ann  van der Berg", first: "Mary", last: "Ann van der Berg"},
		{name: "first line is email", input: "jane@x.com\nJane Doe", first: "", last: ""},
		{name: "first line is phone", input: "(555) 123-4567\nJane Doe", first: "", last: ""},
		{name: "leading blank lines are ignored", input: "\n\n   \nJane Doe", first: "Jane", last: "Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := Parse(tt.input).PersonalInfo
			if info.FirstName != tt.first || info.LastName != tt.last {
				t.Fatalf("expected %q/%q, got %q/%q", tt.first, tt.last, info.FirstName, info.LastName)
			}
		})
	}
}

func TestParseContact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect resume.PersonalInfo
	}{
		{
			name:  "all four fields",
			input: "Jane Doe\njane.doe@mail.example.org\n+1 555.123.4567\nhttps://www.LinkedIn.com/in/jane-doe | github.com/janedoe",
			expect: resume.PersonalInfo{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane.doe@mail.example.org",
				Phone:     "+1 555.123.4567",
				LinkedIn:  "LinkedIn.com/in/jane-doe",
				GitHub:    "github.com/janedoe",
			},
		},
		{
			name:  "first match wins",
			input: "Jane Doe\nfirst@x.com second@y.com\n(555) 123-4567 and 555-999-0000",
			expect: resume.PersonalInfo{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "first@x.com",
				Phone:     "(555) 123-4567",
			},
		},
		{
			name:  "no-break spaces between phone groups",
			input: "Jane Doe\nPhone: +1\u00a0555\u00a0123\u00a04567",
			expect: resume.PersonalInfo{
				FirstName: "Jane",
				LastName:  "Doe",
				Phone:     "+1\u00a0555\u00a0123\u00a04567",
			},
		},
		{
			name:  "narrow no-break spaces",
			input: "Jane Doe\n555\u202f123\u202f4567",
			expect: resume.PersonalInfo{
				FirstName: "Jane",
				LastName:  "Doe",
				Phone:     "555\u202f123\u202f4567",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := Parse(tt.input).PersonalInfo
			if info != tt.expect {
				t.Fatalf("expected %+v, got %+v", tt.expect, info)
			}
		})
	}
}

func TestParseContactWindow(t *testing.T) {
	lines := make([]string, 0, 11)
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("Filler line %d", i))
	}
	lines = append(lines, "late@x.com")

	info := Parse(strings.Join(lines, "\n")).PersonalInfo
	if info.Email != "" {
		t.Fatalf("expected email outside first 10 lines to be ignored, got %q", info.Email)
	}
}

func TestParseSkillsStopAtNextHeader(t *testing.T) {
	got := Parse("Skills\nJavaScript, Python, Go\nEducation\nMIT, Stanford")

	if len(got.Skills) != 3 {
		t.Fatalf("expected 3 skills, got %+v", got.Skills)
	}
	for i, name := range []string{"JavaScript", "Python", "Go"} {
		if got.Skills[i].Name != name {
			t.Fatalf("expected %q at %d, got %q", name, i, got.Skills[i].Name)
		}
	}
	if len(got.Education) != 0 {
		t.Fatalf("education content must not be synthesized, got %+v", got.Education)
	}
}

func TestParseSkillTokenLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		expect []string
	}{
		{name: "single character dropped", line: "C, Go", expect: []string{"Go"}},
		{name: "fifty characters dropped", line: strings.Repeat("a", 50) + "; Go", expect: []string{"Go"}},
		{name: "forty nine characters kept", line: strings.Repeat("b", 49), expect: []string{strings.Repeat("b", 49)}},
		{name: "pipe separated with bullet", line: "• Docker | Kubernetes | Helm", expect: []string{"Docker", "Kubernetes", "Helm"}},
		{name: "asterisk bullet and empty tokens", line: "* Go,, ;Rust", expect: []string{"Go", "Rust"}},
		{name: "runes are counted not bytes", line: "日本, Go", expect: []string{"日本", "Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse("Skills\n" + tt.line).Skills
			names := make([]string, 0, len(got))
			for _, s := range got {
				names = append(names, s.Name)
			}
			if !reflect.DeepEqual(names, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, names)
			}
		})
	}
}

func TestParseInterests(t *testing.T) {
	got := Parse("Jane Doe\nHobbies\n• Chess; Hiking | Go\nx")

	if len(got.Interests) != 3 {
		t.Fatalf("expected 3 interests, got %+v", got.Interests)
	}
	if got.Interests[1].Name != "Hiking" || got.Interests[1].ID == "" {
		t.Fatalf("unexpected interest: %+v", got.Interests[1])
	}
	if len(got.Skills) != 0 {
		t.Fatalf("interests must not produce skills")
	}
}

func TestParseSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "lines are space joined",
			input:  "Summary\nBuilds things.\nShips them too.",
			expect: "Builds things. Ships them too.",
		},
		{
			name:   "content before any header is dropped",
			input:  "Jane Doe\nstray line\nSummary\nKept.",
			expect: "Kept.",
		},
		{
			name:   "section never closes",
			input:  "Summary\nline one\nPage 1 of 2",
			expect: "line one Page 1 of 2",
		},
		{
			name:   "keyword inside a sentence switches section",
			input:  "Summary\nled the project rollout\nMore text",
			expect: "",
		},
		{
			name:   "second summary header starts a fresh buffer",
			input:  "Summary\nfirst\nSkills\nGo\nObjective\nsecond",
			expect: "second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Parse(tt.input).Summary; got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestParseStrictHeaders(t *testing.T) {
	input := "Summary\nled the project rollout\nSkills\nGo"

	loose := Parse(input)
	if loose.Summary != "" {
		t.Fatalf("expected default mode to switch on the keyword, got summary %q", loose.Summary)
	}

	strict := ParseWithOptions(input, Options{StrictHeaders: true})
	if strict.Summary != "led the project rollout" {
		t.Fatalf("expected strict mode to keep the sentence, got %q", strict.Summary)
	}
	if len(strict.Skills) != 1 || strict.Skills[0].Name != "Go" {
		t.Fatalf("unexpected skills: %+v", strict.Skills)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t\n"} {
		got := Parse(input)
		if got == nil {
			t.Fatalf("expected a record for %q", input)
		}
		if !reflect.DeepEqual(got, resume.New()) {
			t.Fatalf("expected an empty record for %q, got %+v", input, got)
		}
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := "Jane Doe\njane@x.com\nSkills\nGo, Rust\nInterests\nChess\nSummary\nHello."

	first := ParseWithOptions(input, Options{NewID: sequentialIDs()})
	second := ParseWithOptions(input, Options{NewID: sequentialIDs()})

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output\nfirst:  %+v\nsecond: %+v", first, second)
	}

	// With generated ids the records differ only in ids.
	a, b := Parse(input), Parse(input)
	for i := range a.Skills {
		a.Skills[i].ID, b.Skills[i].ID = "", ""
	}
	for i := range a.Interests {
		a.Interests[i].ID, b.Interests[i].ID = "", ""
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical output apart from ids")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("  a \r\n\n b\t\n\n")
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected lines: %q", got)
	}
}
