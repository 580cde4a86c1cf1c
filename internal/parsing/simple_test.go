package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSummary_JoinsLines(t *testing.T) {
	summary := ParseSummary([]string{"Backend engineer with eight", "years of experience."})
	assert.Equal(t, "Backend engineer with eight years of experience.", summary)
}

func TestParseSummary_Empty(t *testing.T) {
	assert.Equal(t, "", ParseSummary(nil))
}

func TestParseHobbies_CommaJoined(t *testing.T) {
	hobbies := ParseHobbies([]string{"Photography", "Cycling"})
	assert.Equal(t, "Photography, Cycling", hobbies)
}

func TestParseHobbies_Empty(t *testing.T) {
	assert.Equal(t, "", ParseHobbies(nil))
}
