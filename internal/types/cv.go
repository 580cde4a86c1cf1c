// Package types provides type definitions for structured data used throughout the cv-importer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// SectionType identifies one of the canonical CV sections.
type SectionType string

// Canonical section types. PersonalInfo is the implicit header block; it is
// never detected as a heading but is always present in a document.
const (
	SectionPersonalInfo   SectionType = "personal_info"
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionProjects       SectionType = "projects"
	SectionEducation      SectionType = "education"
	SectionInvolvement    SectionType = "involvement"
	SectionSkills         SectionType = "skills"
	SectionCertifications SectionType = "certifications"
	SectionLanguages      SectionType = "languages"
	SectionAwards         SectionType = "awards"
	SectionHobbies        SectionType = "hobbies"
	SectionReferences     SectionType = "references"
)

// SectionOrder is the fixed canonical ordering of the sections list in a
// CVDocument. Every document carries exactly these twelve entries.
var SectionOrder = []SectionType{
	SectionPersonalInfo,
	SectionSummary,
	SectionExperience,
	SectionProjects,
	SectionEducation,
	SectionInvolvement,
	SectionSkills,
	SectionCertifications,
	SectionLanguages,
	SectionAwards,
	SectionHobbies,
	SectionReferences,
}

// SectionTitles maps each section type to its canonical display label.
// The UI layer re-translates these; the pipeline emits English labels only.
var SectionTitles = map[SectionType]string{
	SectionPersonalInfo:   "Personal Info",
	SectionSummary:        "Summary",
	SectionExperience:     "Experience",
	SectionProjects:       "Projects",
	SectionEducation:      "Education",
	SectionInvolvement:    "Involvement",
	SectionSkills:         "Skills",
	SectionCertifications: "Certifications",
	SectionLanguages:      "Languages",
	SectionAwards:         "Awards",
	SectionHobbies:        "Hobbies",
	SectionReferences:     "References",
}

// Proficiency is a canonical language proficiency level.
type Proficiency string

// Canonical proficiency levels.
const (
	ProficiencyNative       Proficiency = "native"
	ProficiencyFluent       Proficiency = "fluent"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyBeginner     Proficiency = "beginner"
)

// PersonalInfo holds the contact fields extracted from the header block.
// Fields default to empty strings when not found.
type PersonalInfo struct {
	FullName       string `json:"full_name"`
	JobTitle       string `json:"job_title"`
	Location       string `json:"location"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	LinkedIn       string `json:"linkedin"`
	GitHub         string `json:"github"`
	Website        string `json:"website"`
	Nationality    string `json:"nationality"`
	DrivingLicense string `json:"driving_license"`
	ProfilePhoto   string `json:"profile_photo"`
}

// ExperienceEntry represents a single dated work experience entry.
type ExperienceEntry struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

// ProjectEntry represents a personal or professional project.
type ProjectEntry struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Link    string   `json:"link"`
	Date    string   `json:"date"`
	Bullets []string `json:"bullets"`
}

// EducationEntry represents a degree or program.
type EducationEntry struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// InvolvementEntry represents volunteering or extracurricular activity.
type InvolvementEntry struct {
	ID           string   `json:"id"`
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Institution  string   `json:"institution"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Bullets      []string `json:"bullets"`
}

// SkillCategory groups a comma-separated list of skills under a category label.
type SkillCategory struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Items    string `json:"items"`
}

// CertificationEntry represents a certification with a free-text description.
type CertificationEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// LanguageEntry pairs a language with a canonical proficiency level.
type LanguageEntry struct {
	ID          string      `json:"id"`
	Language    string      `json:"language"`
	Proficiency Proficiency `json:"proficiency"`
}

// AwardEntry represents an award or honor.
type AwardEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// ReferenceEntry represents a professional reference contact.
type ReferenceEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// SectionRef describes one entry of the document's section list: which
// section it is, its display title, and whether it is visible by default.
type SectionRef struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Visible bool        `json:"visible"`
}

// CVDocument is the full structured document produced by an import.
type CVDocument struct {
	PersonalInfo   PersonalInfo         `json:"personal_info"`
	Summary        string               `json:"summary"`
	Experience     []ExperienceEntry    `json:"experience"`
	Projects       []ProjectEntry       `json:"projects"`
	Education      []EducationEntry     `json:"education"`
	Involvement    []InvolvementEntry   `json:"involvement"`
	Skills         []SkillCategory      `json:"skills"`
	Certifications []CertificationEntry `json:"certifications"`
	Languages      []LanguageEntry      `json:"languages"`
	Awards         []AwardEntry         `json:"awards"`
	Hobbies        string               `json:"hobbies"`
	References     []ReferenceEntry     `json:"references"`
	Sections       []SectionRef         `json:"sections"`
}

// NewID returns a fresh unique identifier for an entry or section.
// IDs exist purely for list reconciliation in the UI; they carry no
// cross-entity meaning.
func NewID() string {
	return uuid.NewString()
}

// NewCVDocument returns an empty document with non-nil list fields and a
// freshly synthesized section list (everything invisible except personal info).
func NewCVDocument() *CVDocument {
	doc := &CVDocument{
		Experience:     []ExperienceEntry{},
		Projects:       []ProjectEntry{},
		Education:      []EducationEntry{},
		Involvement:    []InvolvementEntry{},
		Skills:         []SkillCategory{},
		Certifications: []CertificationEntry{},
		Languages:      []LanguageEntry{},
		Awards:         []AwardEntry{},
		References:     []ReferenceEntry{},
	}
	doc.Sections = NewSectionList(doc)
	return doc
}

// HasContent reports whether the given section holds any parsed data.
// Personal info counts as content unconditionally.
func (d *CVDocument) HasContent(section SectionType) bool {
	switch section {
	case SectionPersonalInfo:
		return true
	case SectionSummary:
		return d.Summary != ""
	case SectionExperience:
		return len(d.Experience) > 0
	case SectionProjects:
		return len(d.Projects) > 0
	case SectionEducation:
		return len(d.Education) > 0
	case SectionInvolvement:
		return len(d.Involvement) > 0
	case SectionSkills:
		return len(d.Skills) > 0
	case SectionCertifications:
		return len(d.Certifications) > 0
	case SectionLanguages:
		return len(d.Languages) > 0
	case SectionAwards:
		return len(d.Awards) > 0
	case SectionHobbies:
		return d.Hobbies != ""
	case SectionReferences:
		return len(d.References) > 0
	}
	return false
}

// IsEmpty reports whether the import found nothing at all: no personal info
// fields and no section content. Callers should treat an empty result as a
// signal that the import likely failed (e.g. a scanned, image-only PDF).
func (d *CVDocument) IsEmpty() bool {
	if d.PersonalInfo != (PersonalInfo{}) {
		return false
	}
	for _, section := range SectionOrder {
		if section == SectionPersonalInfo {
			continue
		}
		if d.HasContent(section) {
			return false
		}
	}
	return true
}

// NewSectionList synthesizes the canonical section list for a document:
// exactly one entry per section type, in fixed order, visible iff the
// section produced data. It is regenerated from scratch on every import and
// never merged with a prior document's ordering.
func NewSectionList(doc *CVDocument) []SectionRef {
	sections := make([]SectionRef, 0, len(SectionOrder))
	for _, sectionType := range SectionOrder {
		sections = append(sections, SectionRef{
			ID:      NewID(),
			Type:    sectionType,
			Title:   SectionTitles[sectionType],
			Visible: doc.HasContent(sectionType),
		})
	}
	return sections
}
