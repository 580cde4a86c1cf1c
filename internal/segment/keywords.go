package segment

import (
	"strings"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// sectionKeywords maps normalized heading text to a section type. Turkish and
// English variants live in the same table; adding a locale is a data change.
var sectionKeywords = map[string]types.SectionType{
	"summary":          types.SectionSummary,
	"profile":          types.SectionSummary,
	"profil":           types.SectionSummary,
	"about":            types.SectionSummary,
	"about me":         types.SectionSummary,
	"hakkımda":         types.SectionSummary,
	"özet":             types.SectionSummary,
	"objective":        types.SectionSummary,
	"career objective": types.SectionSummary,

	"experience":              types.SectionExperience,
	"work experience":         types.SectionExperience,
	"professional experience": types.SectionExperience,
	"deneyim":                 types.SectionExperience,
	"iş deneyimi":             types.SectionExperience,
	"employment":              types.SectionExperience,
	"employment history":      types.SectionExperience,
	"work history":            types.SectionExperience,

	"education": types.SectionEducation,
	"eğitim":    types.SectionEducation,

	"skills":            types.SectionSkills,
	"technical skills":  types.SectionSkills,
	"beceriler":         types.SectionSkills,
	"yetenekler":        types.SectionSkills,
	"core competencies": types.SectionSkills,

	"projects":          types.SectionProjects,
	"projeler":          types.SectionProjects,
	"personal projects": types.SectionProjects,
	"project":           types.SectionProjects,

	"certifications": types.SectionCertifications,
	"certificates":   types.SectionCertifications,
	"sertifikalar":   types.SectionCertifications,
	"certification":  types.SectionCertifications,

	"languages": types.SectionLanguages,
	"diller":    types.SectionLanguages,

	"awards":          types.SectionAwards,
	"honors":          types.SectionAwards,
	"ödüller":         types.SectionAwards,
	"honors & awards": types.SectionAwards,
	"awards & honors": types.SectionAwards,

	"hobbies":       types.SectionHobbies,
	"interests":     types.SectionHobbies,
	"hobiler":       types.SectionHobbies,
	"ilgi alanları": types.SectionHobbies,

	"references":  types.SectionReferences,
	"referanslar": types.SectionReferences,

	"involvement":                types.SectionInvolvement,
	"volunteering":               types.SectionInvolvement,
	"volunteer":                  types.SectionInvolvement,
	"gönüllülük":                 types.SectionInvolvement,
	"aktiviteler":                types.SectionInvolvement,
	"activities":                 types.SectionInvolvement,
	"extracurricular":            types.SectionInvolvement,
	"extracurricular activities": types.SectionInvolvement,
}

// normalizeHeading lowers and strips a line down to the form the keyword
// table is keyed by: punctuation/separator characters removed, internal
// whitespace collapsed to single spaces.
func normalizeHeading(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = strings.Map(func(r rune) rune {
		switch r {
		case ':', '-', '–', '—', '_', '|':
			return -1
		}
		return r
	}, normalized)
	return strings.Join(strings.Fields(normalized), " ")
}
