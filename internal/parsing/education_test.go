package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducation_Empty(t *testing.T) {
	entries := ParseEducation(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestParseEducation_DegreeThenInstitutionYearLine(t *testing.T) {
	lines := []string{
		"BSc Computer Engineering",
		"Istanbul Technical University • 2019",
	}
	entries := ParseEducation(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "BSc Computer Engineering", entries[0].Degree)
	assert.Equal(t, "Istanbul Technical University", entries[0].Institution)
	assert.Equal(t, "2019", entries[0].Year)
}

func TestParseEducation_DegreeDotInstitution(t *testing.T) {
	lines := []string{"MSc Software Engineering • Bogazici University"}
	entries := ParseEducation(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "MSc Software Engineering", entries[0].Degree)
	assert.Equal(t, "Bogazici University", entries[0].Institution)
	assert.Equal(t, "", entries[0].Year)
}

func TestParseEducation_TwoInstitutionYearLines(t *testing.T) {
	lines := []string{
		"BSc Mathematics",
		"METU • 2017",
		"MSc Statistics",
		"METU • 2019",
	}
	entries := ParseEducation(lines)
	require.Len(t, entries, 2)
	assert.Equal(t, "BSc Mathematics", entries[0].Degree)
	assert.Equal(t, "2017", entries[0].Year)
	assert.Equal(t, "MSc Statistics", entries[1].Degree)
	assert.Equal(t, "2019", entries[1].Year)
}

func TestParseEducation_BareYearLine(t *testing.T) {
	lines := []string{
		"High School Diploma",
		"Ankara Fen Lisesi 2014",
	}
	entries := ParseEducation(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "High School Diploma", entries[0].Degree)
	assert.Equal(t, "Ankara Fen Lisesi", entries[0].Institution)
	assert.Equal(t, "2014", entries[0].Year)
}

func TestParseEducation_PlainSlotFill(t *testing.T) {
	lines := []string{
		"PhD Physics",
		"MIT",
	}
	entries := ParseEducation(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "PhD Physics", entries[0].Degree)
	assert.Equal(t, "MIT", entries[0].Institution)
}

func TestParseEducation_InstitutionYearWithoutDegree(t *testing.T) {
	lines := []string{"Hacettepe University • 2021"}
	entries := ParseEducation(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Degree)
	assert.Equal(t, "Hacettepe University", entries[0].Institution)
	assert.Equal(t, "2021", entries[0].Year)
}
