package textparser

import (
	"regexp"
	"strings"

	"github.com/spigell/resume-import/internal/resume"
)

// contactWindow is how many leading lines are searched for contact details.
const contactWindow = 10

// Phone separators include Unicode space separators such as the no-break
// spaces PDF text often carries; \s alone only covers ASCII whitespace.
var (
	emailRegex    = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)
	phoneRegex    = regexp.MustCompile(`(\+?\d{1,3}[-.\s\p{Zs}]?)?\(?\d{3}\)?[-.\s\p{Zs}]?\d{3}[-.\s\p{Zs}]?\d{4}`)
	linkedinRegex = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRegex   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// extractContact runs the contact searches over the first lines joined by a
// space. Each search is independent and keeps its first match verbatim.
func extractContact(info *resume.PersonalInfo, lines []string) {
	head := lines
	if len(head) > contactWindow {
		head = head[:contactWindow]
	}
	blob := strings.Join(head, " ")

	if m := emailRegex.FindString(blob); m != "" {
		info.Email = m
	}
	if m := phoneRegex.FindString(blob); m != "" {
		info.Phone = m
	}
	if m := linkedinRegex.FindString(blob); m != "" {
		info.LinkedIn = m
	}
	if m := githubRegex.FindString(blob); m != "" {
		info.GitHub = m
	}
}

// extractName treats the first line as the candidate's name unless it holds an
// email address or a phone number.
func extractName(info *resume.PersonalInfo, lines []string) {
	if len(lines) == 0 {
		return
	}

	first := lines[0]
	if emailRegex.MatchString(first) || phoneRegex.MatchString(first) {
		return
	}

	parts := strings.Fields(first)
	switch {
	case len(parts) >= 2:
		info.FirstName = parts[0]
		info.LastName = strings.Join(parts[1:], " ")
	case len(parts) == 1:
		info.FirstName = parts[0]
	}
}
