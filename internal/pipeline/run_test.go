package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucreistaken/cv-importer/internal/extraction"
	"github.com/sucreistaken/cv-importer/internal/types"
)

func frag(text string, x, y, size float64) extraction.TextFragment {
	return extraction.TextFragment{Text: text, X: x, YGlobal: y, FontSize: size}
}

// sampleCV lays out a small two-section résumé as positioned fragments.
func sampleCV() []extraction.TextFragment {
	return []extraction.TextFragment{
		frag("Jane Doe", 10, 40, 18),
		frag("Backend Engineer", 10, 60, 11),
		frag("jane@example.com | +90 532 123 45 67 | Istanbul, Turkey", 10, 80, 10),
		frag("Experience", 10, 120, 14),
		frag("Senior Engineer Jan 2020 - Present, Berlin", 10, 140, 10),
		frag("Acme Corp", 10, 160, 10),
		frag("• Shipped the payments platform", 10, 180, 10),
		frag("• Cut infra costs by 40%", 10, 200, 10),
		frag("Skills", 10, 240, 14),
		frag("Languages: Go, Python, SQL", 10, 260, 10),
	}
}

func TestImportFragments_EmptyInput(t *testing.T) {
	imp := New(Options{})
	doc := imp.ImportFragments(nil)

	require.NotNil(t, doc)
	assert.True(t, doc.IsEmpty())
	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Projects)
	assert.Len(t, doc.Sections, len(types.SectionOrder))
}

func TestImportFragments_SectionListAlwaysComplete(t *testing.T) {
	imp := New(Options{})
	doc := imp.ImportFragments(sampleCV())

	require.Len(t, doc.Sections, len(types.SectionOrder))
	for i, ref := range doc.Sections {
		assert.Equal(t, types.SectionOrder[i], ref.Type)
		assert.NotEmpty(t, ref.ID)
		assert.NotEmpty(t, ref.Title)
	}
}

func TestImportFragments_SampleCV(t *testing.T) {
	imp := New(Options{})
	doc := imp.ImportFragments(sampleCV())

	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, "Backend Engineer", doc.PersonalInfo.JobTitle)
	assert.Equal(t, "jane@example.com", doc.PersonalInfo.Email)
	assert.Equal(t, "Istanbul", doc.PersonalInfo.Location)

	require.Len(t, doc.Experience, 1)
	e := doc.Experience[0]
	assert.Equal(t, "Senior Engineer", e.Title)
	assert.Equal(t, "Acme Corp", e.Company)
	assert.Equal(t, "Berlin", e.Location)
	assert.Equal(t, "Jan 2020", e.StartDate)
	assert.Equal(t, "Present", e.EndDate)
	assert.Len(t, e.Bullets, 2)

	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "Languages", doc.Skills[0].Category)
	assert.Equal(t, "Go, Python, SQL", doc.Skills[0].Items)

	assert.False(t, doc.IsEmpty())
}

func TestImportFragments_SectionVisibilityTracksContent(t *testing.T) {
	imp := New(Options{})
	doc := imp.ImportFragments(sampleCV())

	visible := map[types.SectionType]bool{}
	for _, ref := range doc.Sections {
		visible[ref.Type] = ref.Visible
	}

	assert.True(t, visible[types.SectionPersonalInfo])
	assert.True(t, visible[types.SectionExperience])
	assert.True(t, visible[types.SectionSkills])
	assert.False(t, visible[types.SectionProjects])
	assert.False(t, visible[types.SectionReferences])
}

func TestImportFragments_IdempotentModuloIDs(t *testing.T) {
	imp := New(Options{})
	first := imp.ImportFragments(sampleCV())
	second := imp.ImportFragments(sampleCV())

	stripIDs(first)
	stripIDs(second)
	assert.Equal(t, first, second)
}

func TestImport_MalformedPDFFails(t *testing.T) {
	imp := New(Options{})
	_, err := imp.Import(context.Background(), []byte("not a pdf"))
	require.Error(t, err)

	var decodeErr *extraction.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestImportFile_MissingFile(t *testing.T) {
	imp := New(Options{})
	_, err := imp.ImportFile(context.Background(), "does-not-exist.pdf")
	assert.Error(t, err)
}

func TestNew_ZeroOptionsGetDefaults(t *testing.T) {
	imp := New(Options{})
	assert.InDelta(t, 0.95, imp.opts.Segment.HeadingFontRatio, 1e-9)
	assert.Equal(t, 40, imp.opts.Segment.MaxHeadingLength)
}

func stripIDs(doc *types.CVDocument) {
	for i := range doc.Experience {
		doc.Experience[i].ID = ""
	}
	for i := range doc.Projects {
		doc.Projects[i].ID = ""
	}
	for i := range doc.Education {
		doc.Education[i].ID = ""
	}
	for i := range doc.Involvement {
		doc.Involvement[i].ID = ""
	}
	for i := range doc.Skills {
		doc.Skills[i].ID = ""
	}
	for i := range doc.Certifications {
		doc.Certifications[i].ID = ""
	}
	for i := range doc.Languages {
		doc.Languages[i].ID = ""
	}
	for i := range doc.Awards {
		doc.Awards[i].ID = ""
	}
	for i := range doc.References {
		doc.References[i].ID = ""
	}
	for i := range doc.Sections {
		doc.Sections[i].ID = ""
	}
}
