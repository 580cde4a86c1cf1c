package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucreistaken/cv-importer/internal/schemas"
	"github.com/sucreistaken/cv-importer/internal/types"
)

func TestDocumentSchema_ValidJSON(t *testing.T) {
	schemaPath := filepath.Join(".", "cv_document.schema.json")
	data, err := os.ReadFile(schemaPath)
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestDocumentSchema_AcceptsEmptyDocument(t *testing.T) {
	doc := types.NewCVDocument()

	err := schemas.ValidateDocument(doc)
	assert.NoError(t, err, "a freshly created document should satisfy the schema")
}

func TestDocumentSchema_AcceptsPopulatedDocument(t *testing.T) {
	doc := types.NewCVDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.PersonalInfo.Email = "jane@example.com"
	doc.Summary = "Backend engineer with eight years of experience."
	doc.Experience = append(doc.Experience, types.ExperienceEntry{
		ID:        types.NewID(),
		Title:     "Senior Engineer",
		Company:   "Acme Corp",
		StartDate: "Jan 2020",
		EndDate:   "Present",
		Bullets:   []string{"Shipped the thing"},
	})
	doc.Languages = append(doc.Languages, types.LanguageEntry{
		ID:          types.NewID(),
		Language:    "Turkish",
		Proficiency: types.ProficiencyNative,
	})
	doc.Sections = types.NewSectionList(doc)

	err := schemas.ValidateDocument(doc)
	assert.NoError(t, err)
}

func TestDocumentSchema_RejectsBadProficiency(t *testing.T) {
	doc := types.NewCVDocument()
	doc.Languages = append(doc.Languages, types.LanguageEntry{
		ID:          types.NewID(),
		Language:    "Spanish",
		Proficiency: "conversational",
	})
	doc.Sections = types.NewSectionList(doc)

	docBytes, err := json.Marshal(doc)
	require.NoError(t, err)

	schemaBytes, err := os.ReadFile("cv_document.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaBytes), string(docBytes))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}
