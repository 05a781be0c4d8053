// Package textparser extracts a partial resume record from free text using
// line-oriented heuristics: regular expressions for contact details and
// keyword matching for section headers. It never fails; anything it cannot
// place is dropped.
package textparser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-import/internal/resume"
)

const (
	minTokenLength = 2
	maxTokenLength = 49
)

var bulletRegex = regexp.MustCompile(`^[-•*]?\s*`)

// Options tunes the parser. The zero value reproduces the default behaviour.
type Options struct {
	// StrictHeaders only accepts short, capitalised lines as section headers.
	StrictHeaders bool
	// NewID generates entity identifiers. Defaults to resume.NewID.
	NewID func() string
}

// state is the accumulator threaded through the line fold.
type state struct {
	active Section
	buffer []string
	result *resume.Data
}

// Parse runs the parser with default options.
func Parse(text string) *resume.Data {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions turns text into a partial record. Contact details come from
// the first lines, the name from the first line, and summary, skills and
// interests from the sections that follow their headers. Other recognised
// sections switch state but produce no records.
func ParseWithOptions(text string, opts Options) *resume.Data {
	if opts.NewID == nil {
		opts.NewID = resume.NewID
	}

	lines := SplitLines(text)
	result := resume.New()

	extractContact(&result.PersonalInfo, lines)
	extractName(&result.PersonalInfo, lines)

	st := state{result: result}
	for _, line := range lines {
		st = st.consume(line, opts)
	}

	return st.result
}

// SplitLines splits text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func (st state) consume(line string, opts Options) state {
	classify := ClassifyLine
	if opts.StrictHeaders {
		classify = ClassifyHeader
	}

	if section, ok := classify(line); ok {
		return state{active: section, result: st.result}
	}

	switch st.active {
	case SectionSummary:
		st.buffer = append(st.buffer, line)
		st.result.Summary = strings.Join(st.buffer, " ")
	case SectionSkills:
		for _, name := range listTokens(line) {
			st.result.Skills = append(st.result.Skills, resume.Skill{
				ID:       opts.NewID(),
				Name:     name,
				Level:    resume.LevelIntermediate,
				Category: resume.CategoryTechnical,
			})
		}
	case SectionInterests:
		for _, name := range listTokens(line) {
			st.result.Interests = append(st.result.Interests, resume.Interest{
				ID:   opts.NewID(),
				Name: name,
			})
		}
	}

	return st
}

// listTokens strips a leading bullet and splits the rest on commas,
// semicolons and pipes. Tokens shorter than 2 or longer than 49 runes are
// dropped so stray punctuation and whole sentences are not taken as items.
func listTokens(line string) []string {
	body := bulletRegex.ReplaceAllString(line, "")
	parts := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		n := utf8.RuneCountInString(token)
		if n < minTokenLength || n > maxTokenLength {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
