package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sucreistaken/cv-importer/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?\(?\d{2,4}\)?[\s.-]?\d{3,4}[\s.-]?\d{2,4}(?:[\s.-]?\d{0,4})?`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[a-zA-Z0-9_-]+`)
	urlRe      = regexp.MustCompile(`(?:https?://)?(?:www\.)?[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)+(?:/[^\s,)]*)?`)

	linkedinHandleRe = regexp.MustCompile(`(?i)in/[a-zA-Z0-9_-]+`)
	githubPrefixRe   = regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/`)
	nonDigitRe       = regexp.MustCompile(`[^\d]`)
)

// locationGazetteer lists the known city/country names the header scan
// recognizes: source-locale cities plus a handful of major international
// ones. Extending coverage is a data change.
var locationGazetteer = []string{
	"Turkey", "Türkiye", "Istanbul", "İstanbul", "Ankara", "İzmir", "Adana",
	"Bursa", "Antalya", "USA", "UK", "Germany", "France", "Netherlands",
	"Berlin", "London", "New York", "San Francisco", "California", "Texas",
}

// ParsePersonalInfo extracts contact fields from the header block. Rules are
// independent pattern hits, not mutually exclusive parses: one contact-bar
// line may supply email, phone, and a handle at once. Missing fields stay
// empty strings.
func ParsePersonalInfo(lines []string) types.PersonalInfo {
	var info types.PersonalInfo
	if len(lines) == 0 {
		return info
	}

	// The first header line is always the name.
	info.FullName = strings.TrimSpace(lines[0])

	allText := strings.Join(lines, " ")

	info.Email = emailRe.FindString(allText)

	// Phone: first loose match whose digit count is plausible.
	for _, candidate := range phoneRe.FindAllString(allText, -1) {
		digits := nonDigitRe.ReplaceAllString(candidate, "")
		if len(digits) >= 7 && len(digits) <= 15 {
			info.Phone = strings.TrimSpace(candidate)
			break
		}
	}

	if raw := linkedinRe.FindString(allText); raw != "" {
		if handle := linkedinHandleRe.FindString(raw); handle != "" {
			info.LinkedIn = handle
		} else {
			info.LinkedIn = raw
		}
	}

	if raw := githubRe.FindString(allText); raw != "" {
		info.GitHub = githubPrefixRe.ReplaceAllString(raw, "")
	}

	info.JobTitle = findJobTitle(lines)
	info.Location = findLocation(lines)
	info.Website = findWebsite(lines)

	return info
}

// findJobTitle returns the first line after the name that looks like a short
// free-text title: no contact info, plausible length, and fewer than two
// pipe/bullet separators (which would mark a dense contact bar).
func findJobTitle(lines []string) string {
	for _, line := range lines[1:] {
		t := strings.TrimSpace(line)
		length := utf8.RuneCountInString(t)
		if emailRe.MatchString(t) || phoneRe.MatchString(t) || urlRe.MatchString(t) {
			continue
		}
		if length <= 2 || length >= 60 || strings.Contains(t, "@") {
			continue
		}
		if countSeparators(t) >= 2 {
			continue
		}
		return t
	}
	return ""
}

// findLocation scans post-name lines against the gazetteer. A matching line
// is stripped of contact patterns and split on commas; the first fragment
// still matching the gazetteer wins.
func findLocation(lines []string) string {
	for _, line := range lines[1:] {
		t := strings.TrimSpace(line)
		if !matchesGazetteer(t) {
			continue
		}

		stripped := emailRe.ReplaceAllString(t, "")
		stripped = phoneRe.ReplaceAllString(stripped, "")
		stripped = linkedinRe.ReplaceAllString(stripped, "")
		stripped = githubRe.ReplaceAllString(stripped, "")
		stripped = urlRe.ReplaceAllString(stripped, "")
		stripped = strings.Map(func(r rune) rune {
			if r == '•' || r == '|' || r == '·' {
				return ','
			}
			return r
		}, stripped)

		for _, part := range strings.Split(stripped, ",") {
			part = strings.TrimSpace(part)
			if part != "" && matchesGazetteer(part) {
				return part
			}
		}
	}
	return ""
}

// findWebsite returns the first URL in any header line that is neither a
// professional-network nor code-hosting handle and contains no "@".
func findWebsite(lines []string) string {
	for _, line := range lines {
		for _, url := range urlRe.FindAllString(line, -1) {
			if linkedinRe.MatchString(url) || githubRe.MatchString(url) || strings.Contains(url, "@") {
				continue
			}
			return url
		}
	}
	return ""
}

// matchesGazetteer reports whether text contains a gazetteer name on word
// boundaries, case-insensitively. Boundary checking is done by hand because
// RE2's \b is ASCII-only and misses names starting with Turkish letters.
func matchesGazetteer(text string) bool {
	lower := strings.ToLower(text)
	for _, place := range locationGazetteer {
		name := strings.ToLower(place)
		from := 0
		for {
			i := strings.Index(lower[from:], name)
			if i < 0 {
				break
			}
			i += from
			if boundaryBefore(lower, i) && boundaryAfter(lower, i+len(name)) {
				return true
			}
			from = i + len(name)
		}
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// countSeparators counts pipe/bullet separator characters in a line.
func countSeparators(s string) int {
	count := 0
	for _, r := range s {
		if r == '•' || r == '|' || r == '·' {
			count++
		}
	}
	return count
}
