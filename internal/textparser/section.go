package textparser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Section identifies the resume section a line belongs to.
type Section int

const (
	// SectionUnknown is the state before any header has been seen. Content
	// lines are discarded while it is active.
	SectionUnknown Section = iota
	SectionSummary
	SectionExperience
	SectionEducation
	SectionSkills
	SectionProjects
	SectionCertifications
	SectionLanguages
	SectionInterests
	SectionAwards
	SectionPublications
	SectionVolunteer
	SectionReferences
)

// MaxHeaderLength bounds header lines when strict header detection is on.
const MaxHeaderLength = 40

var sectionNames = map[Section]string{
	SectionUnknown:        "unknown",
	SectionSummary:        "summary",
	SectionExperience:     "experience",
	SectionEducation:      "education",
	SectionSkills:         "skills",
	SectionProjects:       "projects",
	SectionCertifications: "certifications",
	SectionLanguages:      "languages",
	SectionInterests:      "interests",
	SectionAwards:         "awards",
	SectionPublications:   "publications",
	SectionVolunteer:      "volunteer",
	SectionReferences:     "references",
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return "unknown"
}

type keywordGroup struct {
	section  Section
	keywords []string
}

// headerKeywords is checked in order; the first group with a keyword contained
// in the lowercased line wins.
var headerKeywords = []keywordGroup{
	{SectionSummary, []string{"summary", "objective", "profile", "about"}},
	{SectionExperience, []string{"experience", "employment", "work history"}},
	{SectionEducation, []string{"education", "academic", "qualification"}},
	{SectionSkills, []string{"skill", "technical", "competenc"}},
	{SectionProjects, []string{"project"}},
	{SectionCertifications, []string{"certification", "license", "credential"}},
	{SectionLanguages, []string{"language"}},
	{SectionInterests, []string{"interest", "hobbi"}},
	{SectionAwards, []string{"award", "honor", "achievement"}},
	{SectionPublications, []string{"publication", "research"}},
	{SectionVolunteer, []string{"volunteer", "community"}},
	{SectionReferences, []string{"reference"}},
}

// ClassifyLine reports which section header line is, if any. Matching is a
// substring test on the lowercased line, so a keyword anywhere in the line
// counts, including inside ordinary sentences.
func ClassifyLine(line string) (Section, bool) {
	lower := strings.ToLower(line)
	for _, group := range headerKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.section, true
			}
		}
	}
	return SectionUnknown, false
}

// ClassifyHeader is ClassifyLine with an extra shape check: the line must be at
// most MaxHeaderLength runes and start with an upper-case letter.
func ClassifyHeader(line string) (Section, bool) {
	if !looksLikeHeader(line) {
		return SectionUnknown, false
	}
	return ClassifyLine(line)
}

func looksLikeHeader(line string) bool {
	if line == "" || utf8.RuneCountInString(line) > MaxHeaderLength {
		return false
	}
	first, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(first)
}
