package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/spigell/resume-import/internal/resume"
)

func sampleRecord() *resume.Data {
	d := resume.New()
	d.PersonalInfo = resume.PersonalInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Phone:     "555-123-4567",
		GitHub:    "github.com/janedoe",
	}
	d.Summary = "Backend engineer."
	d.Experience = []resume.Experience{
		{Position: "Engineer", Company: "Acme", StartDate: "2020-01", Current: true, Description: "Built things."},
	}
	d.Skills = []resume.Skill{
		{Name: "Go", Category: resume.CategoryTechnical},
		{Name: "Mentoring", Category: resume.CategorySoft},
		{Name: "Rust", Category: resume.CategoryTechnical},
	}
	d.Languages = []resume.Language{
		{Name: "English", Proficiency: "Native"},
		{Name: "German", Proficiency: "B2"},
	}
	return d
}

func TestText(t *testing.T) {
	got := Text(sampleRecord())

	rule := strings.Repeat("=", 50)
	expect := strings.Join([]string{
		"Jane Doe",
		"jane@x.com | 555-123-4567",
		"GitHub: github.com/janedoe",
		"",
		rule,
		"PROFESSIONAL SUMMARY",
		rule,
		"Backend engineer.",
		"",
		rule,
		"PROFESSIONAL EXPERIENCE",
		rule,
		"",
		"Engineer | Acme",
		"2020-01 - Present",
		"",
		"Built things.",
		"",
		rule,
		"SKILLS",
		rule,
		"",
		"Technical: Go, Rust",
		"",
		"Soft: Mentoring",
		"",
		rule,
		"LANGUAGES",
		rule,
		"English: Native | German: B2",
		"",
	}, "\n")

	if got != expect {
		t.Fatalf("unexpected export:\n%s\nexpected:\n%s", got, expect)
	}
}

func TestTextSkipsEmptySections(t *testing.T) {
	got := Text(resume.New())

	if got != " \n | \n\n" {
		t.Fatalf("unexpected export of empty record: %q", got)
	}
	if strings.Contains(got, "=") {
		t.Fatalf("empty record must not render sections")
	}
}

func TestTextNilRecord(t *testing.T) {
	if got := Text(nil); !strings.HasPrefix(got, " \n") {
		t.Fatalf("unexpected export of nil record: %q", got)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(sampleRecord()); got != "Jane_Doe_Resume.txt" {
		t.Fatalf("unexpected file name %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTextReportsWriteError(t *testing.T) {
	if err := WriteText(failingWriter{}, sampleRecord()); err == nil {
		t.Fatalf("expected write error")
	}
}
