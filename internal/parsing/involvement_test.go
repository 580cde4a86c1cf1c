package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvolvement_Empty(t *testing.T) {
	entries := ParseInvolvement(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestParseInvolvement_DateAnchoredEntry(t *testing.T) {
	lines := []string{
		"Volunteer Mentor Sep 2021 - Present, Kodluyoruz",
		"• Mentored twelve students",
	}
	entries := ParseInvolvement(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "Volunteer Mentor", entries[0].Role)
	assert.Equal(t, "Kodluyoruz", entries[0].Institution)
	assert.Equal(t, "Sep 2021", entries[0].StartDate)
	assert.Equal(t, "Present", entries[0].EndDate)
	assert.Len(t, entries[0].Bullets, 1)
}

func TestParseInvolvement_SlotOrder(t *testing.T) {
	lines := []string{
		"Club President",
		"Chess Club",
		"Bilkent University",
	}
	entries := ParseInvolvement(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "Club President", entries[0].Role)
	assert.Equal(t, "Chess Club", entries[0].Organization)
	assert.Equal(t, "Bilkent University", entries[0].Institution)
}

func TestParseInvolvement_FullSlotsStartNewEntry(t *testing.T) {
	lines := []string{
		"Club President",
		"Chess Club",
		"Bilkent University",
		"Event Organizer",
	}
	entries := ParseInvolvement(lines)
	require.Len(t, entries, 2)
	assert.Equal(t, "Event Organizer", entries[1].Role)
}
