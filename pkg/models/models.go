package models

// PersonalInfo holds the contact block of a resume
type PersonalInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	LinkedIn    string `json:"linkedin"`
	GitHub      string `json:"github"`
	Portfolio   string `json:"portfolio"`
}

// Education represents one school or degree entry
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	GPA         string `json:"gpa"`
}

// Experience represents one position held
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Skills groups skills into three fixed categories
type Skills struct {
	Technical []string `json:"technical"`
	Languages []string `json:"languages"`
	Soft      []string `json:"soft"`
}

// Certification represents a certificate or license
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	URL    string `json:"url"`
}

// Award represents an award or honor
type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`
}

// Resume is the root aggregate edited by a session. Values are treated as
// immutable: every change produces a new Resume through the session reducer.
type Resume struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Education      []Education     `json:"education" validate:"dive"`
	Experience     []Experience    `json:"experience" validate:"dive"`
	Skills         Skills          `json:"skills"`
	Certifications []Certification `json:"certifications" validate:"dive"`
	Awards         []Award         `json:"awards" validate:"dive"`
}

// Default returns the empty resume a new session starts from
func Default() Resume {
	return Resume{
		Education: []Education{},
		Experience: []Experience{},
		Skills: Skills{
			Technical: []string{},
			Languages: []string{},
			Soft:      []string{},
		},
		Certifications: []Certification{},
		Awards:         []Award{},
	}
}

// NewEducation returns the empty entry appended by "add education"
func NewEducation() Education {
	return Education{}
}

// NewExperience returns the empty entry appended by "add experience"
func NewExperience() Experience {
	return Experience{Achievements: []string{}}
}

// NewCertification returns the empty entry appended by "add certification"
func NewCertification() Certification {
	return Certification{}
}

// NewAward returns the empty entry appended by "add award"
func NewAward() Award {
	return Award{}
}

// Normalize replaces nil lists with empty ones so the value serializes
// with [] rather than null.
func (r Resume) Normalize() Resume {
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	exp := make([]Experience, len(r.Experience))
	for i, e := range r.Experience {
		if e.Achievements == nil {
			e.Achievements = []string{}
		}
		exp[i] = e
	}
	r.Experience = exp
	if r.Skills.Technical == nil {
		r.Skills.Technical = []string{}
	}
	if r.Skills.Languages == nil {
		r.Skills.Languages = []string{}
	}
	if r.Skills.Soft == nil {
		r.Skills.Soft = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Awards == nil {
		r.Awards = []Award{}
	}
	return r
}

// Clone returns a deep copy that shares no backing arrays with r
func (r Resume) Clone() Resume {
	out := r
	out.Education = append([]Education{}, r.Education...)
	out.Experience = make([]Experience, len(r.Experience))
	for i, e := range r.Experience {
		e.Achievements = append([]string{}, e.Achievements...)
		out.Experience[i] = e
	}
	out.Skills = Skills{
		Technical: append([]string{}, r.Skills.Technical...),
		Languages: append([]string{}, r.Skills.Languages...),
		Soft:      append([]string{}, r.Skills.Soft...),
	}
	out.Certifications = append([]Certification{}, r.Certifications...)
	out.Awards = append([]Award{}, r.Awards...)
	return out
}
