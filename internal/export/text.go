// Package export renders resume records for download.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/spigell/resume-import/internal/resume"
)

var rule = strings.Repeat("=", 50)

// Text renders d as the plain-text resume layout.
func Text(d *resume.Data) string {
	var b strings.Builder
	_ = WriteText(&b, d)
	return b.String()
}

// FileName is the suggested download name for the plain-text export.
func FileName(d *resume.Data) string {
	return fmt.Sprintf("%s_%s_Resume.txt", d.PersonalInfo.FirstName, d.PersonalInfo.LastName)
}

// WriteText writes the plain-text layout of d to w: a header with name and
// contact lines followed by ruled sections for every non-empty collection.
func WriteText(w io.Writer, d *resume.Data) error {
	d = d.Normalize()
	tw := &textWriter{w: w}

	info := d.PersonalInfo
	tw.linef("%s %s", info.FirstName, info.LastName)
	tw.linef("%s | %s", info.Email, info.Phone)
	if info.LinkedIn != "" {
		tw.linef("LinkedIn: %s", info.LinkedIn)
	}
	if info.GitHub != "" {
		tw.linef("GitHub: %s", info.GitHub)
	}
	if info.Address != "" {
		tw.linef("%s", info.Address)
	}
	tw.linef("")

	if d.Summary != "" {
		tw.heading("PROFESSIONAL SUMMARY")
		tw.linef("%s\n", d.Summary)
	}

	if len(d.Experience) > 0 {
		tw.heading("PROFESSIONAL EXPERIENCE")
		for _, exp := range d.Experience {
			end := exp.EndDate
			if exp.Current {
				end = "Present"
			}
			tw.linef("\n%s | %s", exp.Position, exp.Company)
			tw.linef("%s - %s", exp.StartDate, end)
			if exp.Location != "" {
				tw.linef("Location: %s", exp.Location)
			}
			tw.linef("\n%s", exp.Description)
		}
		tw.linef("")
	}

	if len(d.Education) > 0 {
		tw.heading("EDUCATION")
		for _, edu := range d.Education {
			tw.linef("\n%s in %s", edu.Degree, edu.FieldOfStudy)
			tw.linef("%s", edu.Institution)
			tw.linef("%s - %s", edu.StartDate, edu.EndDate)
			if edu.GPA != "" {
				tw.linef("GPA: %s", edu.GPA)
			}
			if edu.Description != "" {
				tw.linef("%s", edu.Description)
			}
		}
		tw.linef("")
	}

	if len(d.Skills) > 0 {
		tw.heading("SKILLS")
		categories, byCategory := groupSkills(d.Skills)
		for _, category := range categories {
			tw.linef("\n%s: %s", category, strings.Join(byCategory[category], ", "))
		}
		tw.linef("")
	}

	if len(d.Projects) > 0 {
		tw.heading("PROJECTS")
		for _, p := range d.Projects {
			tw.linef("\n%s", p.Name)
			tw.linef("%s", p.Description)
			tw.linef("Technologies: %s", strings.Join(p.Technologies, ", "))
			if p.Link != "" {
				tw.linef("Link: %s", p.Link)
			}
			if p.GitHub != "" {
				tw.linef("GitHub: %s", p.GitHub)
			}
		}
		tw.linef("")
	}

	if len(d.Certifications) > 0 {
		tw.heading("CERTIFICATIONS")
		for _, c := range d.Certifications {
			tw.linef("\n%s - %s", c.Name, c.Issuer)
			tw.linef("Issued: %s", c.Date)
			if c.CredentialID != "" {
				tw.linef("Credential ID: %s", c.CredentialID)
			}
		}
		tw.linef("")
	}

	if len(d.Languages) > 0 {
		tw.heading("LANGUAGES")
		langs := make([]string, 0, len(d.Languages))
		for _, l := range d.Languages {
			langs = append(langs, l.Name+": "+l.Proficiency)
		}
		tw.linef("%s", strings.Join(langs, " | "))
	}

	return tw.err
}

// groupSkills groups skill names by category, keeping categories in order of
// first appearance.
func groupSkills(skills []resume.Skill) ([]string, map[string][]string) {
	var order []string
	grouped := make(map[string][]string)
	for _, s := range skills {
		if _, ok := grouped[s.Category]; !ok {
			order = append(order, s.Category)
		}
		grouped[s.Category] = append(grouped[s.Category], s.Name)
	}
	return order, grouped
}

// textWriter remembers the first write error so the layout code stays linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) linef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format+"\n", args...)
}

func (tw *textWriter) heading(title string) {
	tw.linef("%s", rule)
	tw.linef("%s", title)
	tw.linef("%s", rule)
}
