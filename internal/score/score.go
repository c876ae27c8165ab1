// Package score computes how complete a resume is.
package score

import (
	"math"

	"github.com/khrees2412/quickcv/pkg/models"
)

// Tally counts filled required fields against the fields tracked
type Tally struct {
	Filled int
	Total  int
}

func (t *Tally) add(filled bool) {
	t.Total++
	if filled {
		t.Filled++
	}
}

// Section is the tally of one part of the resume
type Section struct {
	Name string
	Tally
}

// Breakdown tallies each tracked section in display order
func Breakdown(r models.Resume) []Section {
	var personal, summary, education, experience, skills Tally

	for _, f := range models.RequiredPersonalFields {
		personal.add(f.Get(r.PersonalInfo) != "")
	}

	summary.add(r.Summary != "")

	for _, e := range r.Education {
		for _, f := range models.RequiredEducationFields {
			education.add(f.Get(e) != "")
		}
	}

	for _, e := range r.Experience {
		for _, f := range models.RequiredExperienceFields {
			experience.add(f.Get(e) != "")
		}
	}

	for _, c := range models.SkillCategories {
		skills.add(len(r.Skills.Get(c)) > 0)
	}

	return []Section{
		{Name: "Personal Info", Tally: personal},
		{Name: "Summary", Tally: summary},
		{Name: "Education", Tally: education},
		{Name: "Experience", Tally: experience},
		{Name: "Skills", Tally: skills},
	}
}

// Total sums a breakdown
func Total(sections []Section) Tally {
	var t Tally
	for _, s := range sections {
		t.Filled += s.Filled
		t.Total += s.Total
	}
	return t
}

// Percent converts a tally into a whole percentage in [0, 100]
func (t Tally) Percent() int {
	pct := int(math.Round(float64(t.Filled) / float64(max(t.Total, 1)) * 100))
	return min(pct, 100)
}

// Compute returns the completeness score of r in [0, 100]. Adding an empty
// education or experience entry lowers the score: it adds tracked fields
// without filling any.
func Compute(r models.Resume) int {
	return Total(Breakdown(r)).Percent()
}
