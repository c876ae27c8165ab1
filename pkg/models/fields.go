package models

import (
	"fmt"
	"strings"
)

// Field is a typed accessor for one editable string field of T
type Field[T any] struct {
	Name   string
	IsDate bool
	get    func(T) string
	set    func(*T, string)
}

// Get reads the field from v
func (f Field[T]) Get(v T) string {
	return f.get(v)
}

// With returns a copy of v with the field replaced by value
func (f Field[T]) With(v T, value string) T {
	f.set(&v, value)
	return v
}

// Personal info fields
var (
	PersonalName        = Field[PersonalInfo]{Name: "name", get: func(p PersonalInfo) string { return p.Name }, set: func(p *PersonalInfo, s string) { p.Name = s }}
	PersonalEmail       = Field[PersonalInfo]{Name: "email", get: func(p PersonalInfo) string { return p.Email }, set: func(p *PersonalInfo, s string) { p.Email = s }}
	PersonalPhone       = Field[PersonalInfo]{Name: "phone", get: func(p PersonalInfo) string { return p.Phone }, set: func(p *PersonalInfo, s string) { p.Phone = s }}
	PersonalAddress     = Field[PersonalInfo]{Name: "address", get: func(p PersonalInfo) string { return p.Address }, set: func(p *PersonalInfo, s string) { p.Address = s }}
	PersonalDateOfBirth = Field[PersonalInfo]{Name: "dateOfBirth", IsDate: true, get: func(p PersonalInfo) string { return p.DateOfBirth }, set: func(p *PersonalInfo, s string) { p.DateOfBirth = s }}
	PersonalLinkedIn    = Field[PersonalInfo]{Name: "linkedin", get: func(p PersonalInfo) string { return p.LinkedIn }, set: func(p *PersonalInfo, s string) { p.LinkedIn = s }}
	PersonalGitHub      = Field[PersonalInfo]{Name: "github", get: func(p PersonalInfo) string { return p.GitHub }, set: func(p *PersonalInfo, s string) { p.GitHub = s }}
	PersonalPortfolio   = Field[PersonalInfo]{Name: "portfolio", get: func(p PersonalInfo) string { return p.Portfolio }, set: func(p *PersonalInfo, s string) { p.Portfolio = s }}
)

// Education fields
var (
	EducationInstitution = Field[Education]{Name: "institution", get: func(e Education) string { return e.Institution }, set: func(e *Education, s string) { e.Institution = s }}
	EducationDegree      = Field[Education]{Name: "degree", get: func(e Education) string { return e.Degree }, set: func(e *Education, s string) { e.Degree = s }}
	EducationStudyField  = Field[Education]{Name: "field", get: func(e Education) string { return e.Field }, set: func(e *Education, s string) { e.Field = s }}
	EducationStartDate   = Field[Education]{Name: "startDate", IsDate: true, get: func(e Education) string { return e.StartDate }, set: func(e *Education, s string) { e.StartDate = s }}
	EducationEndDate     = Field[Education]{Name: "endDate", IsDate: true, get: func(e Education) string { return e.EndDate }, set: func(e *Education, s string) { e.EndDate = s }}
	EducationGPA         = Field[Education]{Name: "gpa", get: func(e Education) string { return e.GPA }, set: func(e *Education, s string) { e.GPA = s }}
)

// Experience fields. Achievements are edited through their own list actions.
var (
	ExperienceCompany     = Field[Experience]{Name: "company", get: func(e Experience) string { return e.Company }, set: func(e *Experience, s string) { e.Company = s }}
	ExperiencePosition    = Field[Experience]{Name: "position", get: func(e Experience) string { return e.Position }, set: func(e *Experience, s string) { e.Position = s }}
	ExperienceStartDate   = Field[Experience]{Name: "startDate", IsDate: true, get: func(e Experience) string { return e.StartDate }, set: func(e *Experience, s string) { e.StartDate = s }}
	ExperienceEndDate     = Field[Experience]{Name: "endDate", IsDate: true, get: func(e Experience) string { return e.EndDate }, set: func(e *Experience, s string) { e.EndDate = s }}
	ExperienceDescription = Field[Experience]{Name: "description", get: func(e Experience) string { return e.Description }, set: func(e *Experience, s string) { e.Description = s }}
)

// Certification fields
var (
	CertificationName   = Field[Certification]{Name: "name", get: func(c Certification) string { return c.Name }, set: func(c *Certification, s string) { c.Name = s }}
	CertificationIssuer = Field[Certification]{Name: "issuer", get: func(c Certification) string { return c.Issuer }, set: func(c *Certification, s string) { c.Issuer = s }}
	CertificationDate   = Field[Certification]{Name: "date", IsDate: true, get: func(c Certification) string { return c.Date }, set: func(c *Certification, s string) { c.Date = s }}
	CertificationURL    = Field[Certification]{Name: "url", get: func(c Certification) string { return c.URL }, set: func(c *Certification, s string) { c.URL = s }}
)

// Award fields
var (
	AwardTitle       = Field[Award]{Name: "title", get: func(a Award) string { return a.Title }, set: func(a *Award, s string) { a.Title = s }}
	AwardIssuer      = Field[Award]{Name: "issuer", get: func(a Award) string { return a.Issuer }, set: func(a *Award, s string) { a.Issuer = s }}
	AwardDate        = Field[Award]{Name: "date", IsDate: true, get: func(a Award) string { return a.Date }, set: func(a *Award, s string) { a.Date = s }}
	AwardDescription = Field[Award]{Name: "description", get: func(a Award) string { return a.Description }, set: func(a *Award, s string) { a.Description = s }}
)

// Field tables in form order
var (
	PersonalFields      = []Field[PersonalInfo]{PersonalName, PersonalEmail, PersonalPhone, PersonalAddress, PersonalDateOfBirth, PersonalLinkedIn, PersonalGitHub, PersonalPortfolio}
	EducationFields     = []Field[Education]{EducationInstitution, EducationDegree, EducationStudyField, EducationStartDate, EducationEndDate, EducationGPA}
	ExperienceFields    = []Field[Experience]{ExperienceCompany, ExperiencePosition, ExperienceStartDate, ExperienceEndDate, ExperienceDescription}
	CertificationFields = []Field[Certification]{CertificationName, CertificationIssuer, CertificationDate, CertificationURL}
	AwardFields         = []Field[Award]{AwardTitle, AwardIssuer, AwardDate, AwardDescription}
)

// Required fields counted by the completeness score
var (
	RequiredPersonalFields   = []Field[PersonalInfo]{PersonalName, PersonalEmail, PersonalPhone, PersonalAddress}
	RequiredEducationFields  = []Field[Education]{EducationInstitution, EducationDegree, EducationStudyField, EducationStartDate, EducationEndDate}
	RequiredExperienceFields = []Field[Experience]{ExperienceCompany, ExperiencePosition, ExperienceStartDate, ExperienceEndDate, ExperienceDescription}
)

// LookupField finds a field by name. Matching ignores case, dashes and
// underscores so "start-date", "start_date" and "startDate" are equal.
func LookupField[T any](fields []Field[T], name string) (Field[T], error) {
	key := foldFieldName(name)
	for _, f := range fields {
		if foldFieldName(f.Name) == key {
			return f, nil
		}
	}
	return Field[T]{}, fmt.Errorf("unknown field %q (valid: %s)", name, strings.Join(FieldNames(fields), ", "))
}

// FieldNames lists the names of a field table
func FieldNames[T any](fields []Field[T]) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func foldFieldName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// SkillCategory names one of the three skill lists
type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillLanguages SkillCategory = "languages"
	SkillSoft      SkillCategory = "soft"
)

// SkillCategories lists the categories in display order
var SkillCategories = []SkillCategory{SkillTechnical, SkillLanguages, SkillSoft}

// ParseSkillCategory validates a category name
func ParseSkillCategory(name string) (SkillCategory, error) {
	switch SkillCategory(strings.ToLower(strings.TrimSpace(name))) {
	case SkillTechnical:
		return SkillTechnical, nil
	case SkillLanguages, "language":
		return SkillLanguages, nil
	case SkillSoft:
		return SkillSoft, nil
	}
	return "", fmt.Errorf("unknown skill category %q (valid: technical, languages, soft)", name)
}

// Label is the heading used in output
func (c SkillCategory) Label() string {
	switch c {
	case SkillTechnical:
		return "Technical Skills"
	case SkillLanguages:
		return "Languages"
	case SkillSoft:
		return "Soft Skills"
	}
	return string(c)
}

// Get returns the list for category c
func (s Skills) Get(c SkillCategory) []string {
	switch c {
	case SkillTechnical:
		return s.Technical
	case SkillLanguages:
		return s.Languages
	case SkillSoft:
		return s.Soft
	}
	return nil
}

// With returns a copy of s with the list for category c replaced
func (s Skills) With(c SkillCategory, list []string) Skills {
	switch c {
	case SkillTechnical:
		s.Technical = list
	case SkillLanguages:
		s.Languages = list
	case SkillSoft:
		s.Soft = list
	}
	return s
}
