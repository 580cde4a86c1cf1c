package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePersonalInfo_EmptyHeader(t *testing.T) {
	info := ParsePersonalInfo(nil)
	assert.Equal(t, "", info.FullName)
	assert.Equal(t, "", info.Email)
}

func TestParsePersonalInfo_FirstLineIsName(t *testing.T) {
	info := ParsePersonalInfo([]string{"Ayşe Yılmaz", "Software Engineer"})
	assert.Equal(t, "Ayşe Yılmaz", info.FullName)
	assert.Equal(t, "Software Engineer", info.JobTitle)
}

func TestParsePersonalInfo_ContactBar(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"Backend Engineer",
		"jane.doe@example.com | +90 532 123 45 67 | Istanbul, Turkey",
	}
	info := ParsePersonalInfo(lines)
	assert.Equal(t, "Jane Doe", info.FullName)
	assert.Equal(t, "Backend Engineer", info.JobTitle)
	assert.Equal(t, "jane.doe@example.com", info.Email)
	assert.Equal(t, "+90 532 123 45 67", info.Phone)
	assert.Equal(t, "Istanbul", info.Location)
}

func TestParsePersonalInfo_LinkedInNarrowedToHandle(t *testing.T) {
	lines := []string{"Jane Doe", "https://www.linkedin.com/in/janedoe"}
	info := ParsePersonalInfo(lines)
	assert.Equal(t, "in/janedoe", info.LinkedIn)
}

func TestParsePersonalInfo_GitHubPrefixStripped(t *testing.T) {
	lines := []string{"Jane Doe", "https://github.com/janedoe"}
	info := ParsePersonalInfo(lines)
	assert.Equal(t, "github.com/janedoe", info.GitHub)
}

func TestParsePersonalInfo_WebsiteSkipsProfiles(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"linkedin.com/in/janedoe • github.com/janedoe • janedoe.dev",
	}
	info := ParsePersonalInfo(lines)
	assert.Equal(t, "janedoe.dev", info.Website)
}

func TestParsePersonalInfo_PhoneDigitBounds(t *testing.T) {
	// Too few digits to be a phone number.
	info := ParsePersonalInfo([]string{"Jane Doe", "suite 12 34"})
	assert.Equal(t, "", info.Phone)
}

func TestFindJobTitle_SkipsContactLines(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"jane@example.com",
		"Product Manager",
	}
	assert.Equal(t, "Product Manager", findJobTitle(lines))
}

func TestFindJobTitle_SkipsDenseContactBar(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"Istanbul • Remote • Hybrid",
	}
	assert.Equal(t, "", findJobTitle(lines))
}

func TestFindLocation_TurkishCity(t *testing.T) {
	lines := []string{"Mehmet Demir", "İstanbul, Türkiye"}
	assert.Equal(t, "İstanbul", findLocation(lines))
}

func TestFindLocation_NoGazetteerHit(t *testing.T) {
	lines := []string{"Jane Doe", "Springfield"}
	assert.Equal(t, "", findLocation(lines))
}

func TestMatchesGazetteer_WordBoundaries(t *testing.T) {
	assert.True(t, matchesGazetteer("lives in Berlin now"))
	assert.False(t, matchesGazetteer("Berlinale festival"))
	assert.True(t, matchesGazetteer("İstanbul"))
}
