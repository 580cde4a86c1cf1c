// Package parsing recovers typed CV entries from raw section line sequences
// using data-driven regex heuristics. Parsers never fail: unrecognizable
// input degrades to empty fields.
package parsing

import (
	"regexp"
	"strings"
)

// monthPattern matches English and Turkish month names, abbreviated or full.
const monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?|Ocak|Şubat|Mart|Nisan|Mayıs|Haziran|Temmuz|Ağustos|Eylül|Ekim|Kasım|Aralık)`

// presentPattern matches the open-ended tokens accepted on the right side of
// a date range.
const presentPattern = `Present|Current|Günümüz|Devam|Halen`

var (
	// dateRangeRe matches "Mon YYYY - Mon YYYY" and "Mon YYYY - Present"
	// style ranges with any dash variant.
	dateRangeRe = regexp.MustCompile(`(?i)` + monthPattern + `\.?\s*\d{4}\s*[-–—]\s*(?:` + monthPattern + `\.?\s*\d{4}|` + presentPattern + `)`)

	// dateRangeSplitRe splits a matched range into its two sides.
	dateRangeSplitRe = regexp.MustCompile(`\s*[-–—]\s*`)

	// yearRe matches a bare 4-digit year.
	yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// bulletRe matches a leading bullet marker from the glyph set seen in
	// real résumé PDFs.
	bulletRe = regexp.MustCompile(`^[•◦▪●‣⁃➢\-*]\s*`)

	// fieldSeparatorRe matches the separator characters stripped when a year
	// is peeled out of a mixed line.
	fieldSeparatorRe = regexp.MustCompile(`[-–—,|•·]`)
)

// DateRange is a date range found inside a line, along with the text on
// either side of the match.
type DateRange struct {
	Start  string
	End    string
	Before string
	After  string
}

// ExtractDateRange finds the first date range in text. Before is the text
// preceding the match with trailing separators trimmed; After is the text
// following it with leading separators trimmed.
func ExtractDateRange(text string) (DateRange, bool) {
	loc := dateRangeRe.FindStringIndex(text)
	if loc == nil {
		return DateRange{}, false
	}

	parts := dateRangeSplitRe.Split(text[loc[0]:loc[1]], 2)
	r := DateRange{
		Start:  strings.TrimSpace(parts[0]),
		Before: strings.TrimFunc(text[:loc[0]], isSeparatorOrSpace),
		After:  strings.TrimFunc(text[loc[1]:], isSeparatorOrSpace),
	}
	if len(parts) > 1 {
		r.End = strings.TrimSpace(parts[1])
	}
	return r, true
}

// isBullet reports whether a line starts with a bullet marker.
func isBullet(text string) bool {
	return bulletRe.MatchString(text)
}

// stripBullet removes a leading bullet marker and surrounding whitespace.
func stripBullet(text string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(text, ""))
}

// firstYear returns the first bare 4-digit year in text, or "".
func firstYear(text string) string {
	return yearRe.FindString(text)
}

// stripYearAndSeparators removes the year and separator characters from a
// line, collapsing the remainder to single-spaced text. Used when a title and
// year share one line.
func stripYearAndSeparators(text string) string {
	cleaned := yearRe.ReplaceAllString(text, "")
	cleaned = fieldSeparatorRe.ReplaceAllString(cleaned, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

func isSeparatorOrSpace(r rune) bool {
	return r == ',' || r == '|' || r == ' ' || r == '\t'
}
