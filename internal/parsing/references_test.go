package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReferences_Empty(t *testing.T) {
	entries := ParseReferences(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestParseReferences_FullEntry(t *testing.T) {
	lines := []string{
		"Dr. Elif Kaya",
		"Engineering Manager, Acme Corp",
		"elif.kaya@example.com",
		"+90 533 111 22 33",
	}
	entries := ParseReferences(lines)
	require.Len(t, entries, 1)

	r := entries[0]
	assert.Equal(t, "Dr. Elif Kaya", r.Name)
	assert.Equal(t, "Engineering Manager", r.Title)
	assert.Equal(t, "Acme Corp", r.Company)
	assert.Equal(t, "elif.kaya@example.com", r.Email)
	assert.Equal(t, "+90 533 111 22 33", r.Phone)
}

func TestParseReferences_BlankLineSeparatesEntries(t *testing.T) {
	lines := []string{
		"Person One",
		"Manager, Acme",
		"",
		"Person Two",
		"Director, Globex",
	}
	entries := ParseReferences(lines)
	require.Len(t, entries, 2)
	assert.Equal(t, "Person One", entries[0].Name)
	assert.Equal(t, "Person Two", entries[1].Name)
	assert.Equal(t, "Director", entries[1].Title)
	assert.Equal(t, "Globex", entries[1].Company)
}

func TestParseReferences_ContactLinesPositionIndependent(t *testing.T) {
	lines := []string{
		"Person One",
		"one@example.com",
		"Manager, Acme",
	}
	entries := ParseReferences(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "one@example.com", entries[0].Email)
	assert.Equal(t, "Manager", entries[0].Title)
	assert.Equal(t, "Acme", entries[0].Company)
}

func TestParseReferences_NamelessEntryDropped(t *testing.T) {
	entries := ParseReferences([]string{"ghost@example.com"})
	assert.Empty(t, entries)
}
