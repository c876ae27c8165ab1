package session

import "github.com/khrees2412/quickcv/pkg/models"

// Action is one state transition. Implementations never mutate the
// resume they receive and change exactly one section.
type Action interface {
	apply(r models.Resume) models.Resume
}

// Apply is the reducer: it returns the state that results from a
func Apply(r models.Resume, a Action) models.Resume {
	if a == nil {
		return r
	}
	return a.apply(r)
}

// Reset replaces the whole resume with the empty default
type Reset struct{}

func (Reset) apply(models.Resume) models.Resume { return models.Default() }

// SetPersonal replaces one personal info field
type SetPersonal struct {
	Field models.Field[models.PersonalInfo]
	Value string
}

func (a SetPersonal) apply(r models.Resume) models.Resume {
	r.PersonalInfo = a.Field.With(r.PersonalInfo, a.Value)
	return r
}

// ReplacePersonal replaces the personal info block as a whole
type ReplacePersonal struct {
	Info models.PersonalInfo
}

func (a ReplacePersonal) apply(r models.Resume) models.Resume {
	r.PersonalInfo = a.Info
	return r
}

// SetSummary replaces the summary text
type SetSummary struct {
	Text string
}

func (a SetSummary) apply(r models.Resume) models.Resume {
	r.Summary = a.Text
	return r
}

// Education

type AddEducation struct{}

func (AddEducation) apply(r models.Resume) models.Resume {
	r.Education = models.AppendItem(r.Education, models.NewEducation())
	return r
}

type RemoveEducation struct{ Index int }

func (a RemoveEducation) apply(r models.Resume) models.Resume {
	r.Education = models.RemoveAt(r.Education, a.Index)
	return r
}

type UpdateEducation struct {
	Index int
	Field models.Field[models.Education]
	Value string
}

func (a UpdateEducation) apply(r models.Resume) models.Resume {
	r.Education = models.UpdateAt(r.Education, a.Index, func(e models.Education) models.Education {
		return a.Field.With(e, a.Value)
	})
	return r
}

// Experience

type AddExperience struct{}

func (AddExperience) apply(r models.Resume) models.Resume {
	r.Experience = models.AppendItem(r.Experience, models.NewExperience())
	return r
}

type RemoveExperience struct{ Index int }

func (a RemoveExperience) apply(r models.Resume) models.Resume {
	r.Experience = models.RemoveAt(r.Experience, a.Index)
	return r
}

type UpdateExperience struct {
	Index int
	Field models.Field[models.Experience]
	Value string
}

func (a UpdateExperience) apply(r models.Resume) models.Resume {
	r.Experience = models.UpdateAt(r.Experience, a.Index, func(e models.Experience) models.Experience {
		return a.Field.With(e, a.Value)
	})
	return r
}

// AddAchievement appends an empty achievement to one experience entry
type AddAchievement struct{ Experience int }

func (a AddAchievement) apply(r models.Resume) models.Resume {
	r.Experience = models.UpdateAt(r.Experience, a.Experience, func(e models.Experience) models.Experience {
		e.Achievements = models.AppendItem(e.Achievements, "")
		return e
	})
	return r
}

type RemoveAchievement struct {
	Experience int
	Index      int
}

func (a RemoveAchievement) apply(r models.Resume) models.Resume {
	r.Experience = models.UpdateAt(r.Experience, a.Experience, func(e models.Experience) models.Experience {
		e.Achievements = models.RemoveAt(e.Achievements, a.Index)
		return e
	})
	return r
}

type UpdateAchievement struct {
	Experience int
	Index      int
	Value      string
}

func (a UpdateAchievement) apply(r models.Resume) models.Resume {
	r.Experience = models.UpdateAt(r.Experience, a.Experience, func(e models.Experience) models.Experience {
		e.Achievements = models.UpdateAt(e.Achievements, a.Index, func(string) string { return a.Value })
		return e
	})
	return r
}

// Skills

// AddSkill appends an empty entry to a category
type AddSkill struct{ Category models.SkillCategory }

func (a AddSkill) apply(r models.Resume) models.Resume {
	r.Skills = r.Skills.With(a.Category, models.AppendItem(r.Skills.Get(a.Category), ""))
	return r
}

type RemoveSkill struct {
	Category models.SkillCategory
	Index    int
}

func (a RemoveSkill) apply(r models.Resume) models.Resume {
	r.Skills = r.Skills.With(a.Category, models.RemoveAt(r.Skills.Get(a.Category), a.Index))
	return r
}

type UpdateSkill struct {
	Category models.SkillCategory
	Index    int
	Value    string
}

func (a UpdateSkill) apply(r models.Resume) models.Resume {
	list := models.UpdateAt(r.Skills.Get(a.Category), a.Index, func(string) string { return a.Value })
	r.Skills = r.Skills.With(a.Category, list)
	return r
}

// Certifications

type AddCertification struct{}

func (AddCertification) apply(r models.Resume) models.Resume {
	r.Certifications = models.AppendItem(r.Certifications, models.NewCertification())
	return r
}

type RemoveCertification struct{ Index int }

func (a RemoveCertification) apply(r models.Resume) models.Resume {
	r.Certifications = models.RemoveAt(r.Certifications, a.Index)
	return r
}

type UpdateCertification struct {
	Index int
	Field models.Field[models.Certification]
	Value string
}

func (a UpdateCertification) apply(r models.Resume) models.Resume {
	r.Certifications = models.UpdateAt(r.Certifications, a.Index, func(c models.Certification) models.Certification {
		return a.Field.With(c, a.Value)
	})
	return r
}

// Awards

type AddAward struct{}

func (AddAward) apply(r models.Resume) models.Resume {
	r.Awards = models.AppendItem(r.Awards, models.NewAward())
	return r
}

type RemoveAward struct{ Index int }

func (a RemoveAward) apply(r models.Resume) models.Resume {
	r.Awards = models.RemoveAt(r.Awards, a.Index)
	return r
}

type UpdateAward struct {
	Index int
	Field models.Field[models.Award]
	Value string
}

func (a UpdateAward) apply(r models.Resume) models.Resume {
	r.Awards = models.UpdateAt(r.Awards, a.Index, func(aw models.Award) models.Award {
		return a.Field.With(aw, a.Value)
	})
	return r
}

// Whole-section replacement. The given lists are copied so the caller can
// keep using its own slices.

type ReplaceEducation struct{ Items []models.Education }

func (a ReplaceEducation) apply(r models.Resume) models.Resume {
	r.Education = append([]models.Education{}, a.Items...)
	return r
}

type ReplaceExperience struct{ Items []models.Experience }

func (a ReplaceExperience) apply(r models.Resume) models.Resume {
	r.Experience = make([]models.Experience, len(a.Items))
	for i, e := range a.Items {
		e.Achievements = append([]string{}, e.Achievements...)
		r.Experience[i] = e
	}
	return r
}

type ReplaceSkills struct{ Skills models.Skills }

func (a ReplaceSkills) apply(r models.Resume) models.Resume {
	r.Skills = models.Skills{
		Technical: append([]string{}, a.Skills.Technical...),
		Languages: append([]string{}, a.Skills.Languages...),
		Soft:      append([]string{}, a.Skills.Soft...),
	}
	return r
}

type ReplaceCertifications struct{ Items []models.Certification }

func (a ReplaceCertifications) apply(r models.Resume) models.Resume {
	r.Certifications = append([]models.Certification{}, a.Items...)
	return r
}

type ReplaceAwards struct{ Items []models.Award }

func (a ReplaceAwards) apply(r models.Resume) models.Resume {
	r.Awards = append([]models.Award{}, a.Items...)
	return r
}
