package document

import (
	"testing"

	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(d Document) []Kind {
	out := make([]Kind, len(d.Sections))
	for i, s := range d.Sections {
		out[i] = s.Kind
	}
	return out
}

func TestBuildEmptyResumeHasNoSections(t *testing.T) {
	d := Build(models.Default())

	assert.Empty(t, d.Name)
	assert.Empty(t, d.Contact)
	assert.Empty(t, d.Sections)
}

func TestBuildKeepsFixedOrder(t *testing.T) {
	r := models.Default()
	r.Awards = []models.Award{{Title: "Prize"}}
	r.Summary = "Summary"
	r.Skills.Soft = []string{"Listening"}
	r.Education = []models.Education{{Institution: "MIT"}}
	r.Certifications = []models.Certification{{Name: "CKA"}}
	r.Experience = []models.Experience{{Company: "Acme"}}

	assert.Equal(t, Order, kinds(Build(r)))
}

func TestBuildOmitsEmptySections(t *testing.T) {
	r := models.Default()
	r.Summary = "   "
	r.Experience = []models.Experience{{Company: "Acme", Position: "Engineer"}}

	d := Build(r)
	assert.Equal(t, []Kind{Experience}, kinds(d))
	assert.False(t, d.Has(Summary))
	assert.False(t, d.Has(Awards))
}

func TestExperienceEntry(t *testing.T) {
	r := models.Default()
	r.Experience = []models.Experience{{
		Company:      "Acme",
		Position:     "Engineer",
		StartDate:    "2020-03-01",
		EndDate:      "",
		Description:  " Built things ",
		Achievements: []string{"Shipped v1", " ", "Cut costs"},
	}}

	d := Build(r)
	require.Len(t, d.Sections, 1)
	require.Len(t, d.Sections[0].Entries, 1)

	e := d.Sections[0].Entries[0]
	assert.Equal(t, "Engineer", e.Title)
	assert.Equal(t, "Acme", e.Subtitle)
	assert.Equal(t, "Mar 2020 - Present", e.Dates)
	assert.Equal(t, "Built things", e.Body)
	assert.Equal(t, []string{"Shipped v1", "Cut costs"}, e.Bullets)
}

func TestOptionalFieldsOmitted(t *testing.T) {
	r := models.Default()
	r.Education = []models.Education{
		{Institution: "MIT", Degree: "BSc", Field: "Physics", GPA: "3.9"},
		{Institution: "Harvard", Degree: "MSc"},
	}
	r.Certifications = []models.Certification{
		{Name: "CKA", URL: "https://cncf.io/cka"},
		{Name: "AWS"},
	}

	d := Build(r)
	require.Len(t, d.Sections, 2)

	edu := d.Sections[0].Entries
	assert.Equal(t, "BSc in Physics", edu[0].Title)
	assert.Equal(t, []string{"GPA: 3.9"}, edu[0].Details)
	assert.Equal(t, "MSc", edu[1].Title)
	assert.Empty(t, edu[1].Details)

	certs := d.Sections[1].Entries
	assert.Equal(t, []string{"https://cncf.io/cka"}, certs[0].Details)
	assert.Empty(t, certs[1].Details)
}

func TestSkillLines(t *testing.T) {
	r := models.Default()
	r.Skills.Technical = []string{"Go", "SQL", "Go"}
	r.Skills.Languages = []string{""}
	r.Skills.Soft = []string{"Mentoring"}

	d := Build(r)
	require.Len(t, d.Sections, 1)
	assert.Equal(t, []SkillLine{
		{Label: "Technical Skills", Items: "Go, SQL, Go"},
		{Label: "Soft Skills", Items: "Mentoring"},
	}, d.Sections[0].Skills)

	r.Skills = models.Default().Skills
	r.Skills.Languages = []string{" "}
	assert.False(t, Build(r).Has(Skills))
}

func TestContactLine(t *testing.T) {
	p := models.PersonalInfo{
		Name:        "Ada",
		Email:       "ada@example.com",
		Address:     "London",
		DateOfBirth: "1815-12-10",
		GitHub:      "github.com/ada",
	}
	d := Build(models.Resume{PersonalInfo: p}.Normalize())

	assert.Equal(t, "Ada", d.Name)
	assert.Equal(t, []string{"ada@example.com", "London", "Born Dec 1815", "github.com/ada"}, d.Contact)
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "Jan 2019 - Feb 2021", DateRange("2019-01-15", "2021-02-01"))
	assert.Equal(t, "Jan 2019 - Present", DateRange("2019-01-15", ""))
	assert.Equal(t, "Feb 2021", DateRange("", "2021-02-01"))
	assert.Equal(t, "", DateRange("", ""))
	assert.Equal(t, "someday", FormatDate("someday"))
}

func TestEntryPromotesSubtitle(t *testing.T) {
	r := models.Default()
	r.Experience = []models.Experience{{Company: " Acme "}}
	r.Awards = []models.Award{{}}

	d := Build(r)
	require.Len(t, d.Sections, 2)

	e := d.Sections[0].Entries[0]
	assert.Equal(t, "Acme", e.Title)
	assert.Empty(t, e.Subtitle)
	assert.Equal(t, Entry{}, d.Sections[1].Entries[0])
}
