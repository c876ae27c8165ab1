// Package document turns a resume into the section plan shared by every
// export format: which sections appear, in which order, and which optional
// fields are dropped.
package document

import (
	"strings"
	"time"

	"github.com/khrees2412/quickcv/pkg/models"
)

// Kind identifies a section
type Kind int

const (
	Summary Kind = iota
	Experience
	Education
	Skills
	Certifications
	Awards
)

// Order is the fixed section order of every export
var Order = []Kind{Summary, Experience, Education, Skills, Certifications, Awards}

// Title is the heading printed for a section
func (k Kind) Title() string {
	switch k {
	case Summary:
		return "Professional Summary"
	case Experience:
		return "Work Experience"
	case Education:
		return "Education"
	case Skills:
		return "Skills"
	case Certifications:
		return "Certifications"
	case Awards:
		return "Awards & Honors"
	}
	return ""
}

// Entry is one list item ready for layout. Empty fields are left out by
// the encoders.
type Entry struct {
	Title    string
	Subtitle string
	Dates    string
	Details  []string
	Body     string
	Bullets  []string
}

// SkillLine is one comma-joined skill category
type SkillLine struct {
	Label string
	Items string
}

// Section is one included section. Exactly one of Text, Entries or Skills
// is populated depending on Kind.
type Section struct {
	Kind    Kind
	Title   string
	Text    string
	Entries []Entry
	Skills  []SkillLine
}

// Document is the format-neutral content of an export
type Document struct {
	Name     string
	Contact  []string
	Sections []Section
}

// Has reports whether the document contains a section of kind k
func (d Document) Has(k Kind) bool {
	for _, s := range d.Sections {
		if s.Kind == k {
			return true
		}
	}
	return false
}

// Build applies the inclusion and omission rules to r
func Build(r models.Resume) Document {
	doc := Document{
		Name:    strings.TrimSpace(r.PersonalInfo.Name),
		Contact: contactLine(r.PersonalInfo),
	}

	for _, k := range Order {
		if s, ok := buildSection(k, r); ok {
			doc.Sections = append(doc.Sections, s)
		}
	}
	return doc
}

func buildSection(k Kind, r models.Resume) (Section, bool) {
	s := Section{Kind: k, Title: k.Title()}

	switch k {
	case Summary:
		s.Text = strings.TrimSpace(r.Summary)
		return s, s.Text != ""

	case Experience:
		for _, e := range r.Experience {
			entry := newEntry(e.Position, e.Company, DateRange(e.StartDate, e.EndDate))
			entry.Body = strings.TrimSpace(e.Description)
			entry.Bullets = nonBlank(e.Achievements)
			s.Entries = append(s.Entries, entry)
		}

	case Education:
		for _, e := range r.Education {
			entry := newEntry(degreeTitle(e.Degree, e.Field), e.Institution, DateRange(e.StartDate, e.EndDate))
			if gpa := strings.TrimSpace(e.GPA); gpa != "" {
				entry.Details = append(entry.Details, "GPA: "+gpa)
			}
			s.Entries = append(s.Entries, entry)
		}

	case Skills:
		for _, c := range models.SkillCategories {
			if items := nonBlank(r.Skills.Get(c)); len(items) > 0 {
				s.Skills = append(s.Skills, SkillLine{Label: c.Label(), Items: strings.Join(items, ", ")})
			}
		}
		return s, len(s.Skills) > 0

	case Certifications:
		for _, c := range r.Certifications {
			entry := newEntry(c.Name, c.Issuer, FormatDate(c.Date))
			if url := strings.TrimSpace(c.URL); url != "" {
				entry.Details = append(entry.Details, url)
			}
			s.Entries = append(s.Entries, entry)
		}

	case Awards:
		for _, a := range r.Awards {
			entry := newEntry(a.Title, a.Issuer, FormatDate(a.Date))
			entry.Body = strings.TrimSpace(a.Description)
			s.Entries = append(s.Entries, entry)
		}
	}

	return s, len(s.Entries) > 0
}

// newEntry moves the subtitle up when the title is blank so an entry
// never starts with an empty heading
func newEntry(title, subtitle, dates string) Entry {
	title, subtitle = strings.TrimSpace(title), strings.TrimSpace(subtitle)
	if title == "" {
		title, subtitle = subtitle, ""
	}
	return Entry{Title: title, Subtitle: subtitle, Dates: dates}
}

func contactLine(p models.PersonalInfo) []string {
	var parts []string
	for _, v := range []string{p.Email, p.Phone, p.Address} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	if dob := FormatDate(p.DateOfBirth); dob != "" {
		parts = append(parts, "Born "+dob)
	}
	for _, v := range []string{p.LinkedIn, p.GitHub, p.Portfolio} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}

func degreeTitle(degree, field string) string {
	degree, field = strings.TrimSpace(degree), strings.TrimSpace(field)
	switch {
	case degree != "" && field != "":
		return degree + " in " + field
	case degree != "":
		return degree
	default:
		return field
	}
}

func nonBlank(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FormatDate renders a stored YYYY-MM-DD date as "Jan 2006". Values that
// do not parse are printed as stored.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2006")
}

// DateRange renders a start/end pair. An open end reads "Present"; a
// missing start shows only the end.
func DateRange(start, end string) string {
	start, end = FormatDate(start), FormatDate(end)
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start + " - Present"
	default:
		return end
	}
}
