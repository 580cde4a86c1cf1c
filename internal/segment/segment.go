// Package segment partitions assembled text lines into a header block and a
// sequence of typed sections, using keyword headings gated by visual
// prominence heuristics.
package segment

import (
	"math"
	"unicode/utf8"

	"github.com/sucreistaken/cv-importer/internal/layout"
	"github.com/sucreistaken/cv-importer/internal/types"
)

// Section is one detected section: its type, the raw heading text, and all
// non-heading lines up to the next heading.
type Section struct {
	Type  types.SectionType
	Title string
	Lines []string
}

// Options holds the empirically chosen heading-detection constants. They are
// tunable: the defaults come from the values that worked on a labeled corpus,
// not from a derivation.
type Options struct {
	// HeadingFontRatio is the minimum heading font size as a fraction of the
	// document's body font size.
	HeadingFontRatio float64
	// MaxHeadingLength is the maximum raw length of a heading line.
	MaxHeadingLength int
}

// DefaultOptions returns the heading-detection constants used by the
// original import heuristics.
func DefaultOptions() Options {
	return Options{
		HeadingFontRatio: 0.95,
		MaxHeadingLength: 40,
	}
}

// fallbackBodyFontSize is assumed when a document has no lines to vote.
const fallbackBodyFontSize = 10.0

// BodyFontSize returns the document's body font size: the most frequent font
// size across all lines, rounded to the nearest 0.5. Body paragraph text
// dominates line count; headings are same-size-or-larger but rare.
func BodyFontSize(lines []layout.TextLine) float64 {
	counts := make(map[float64]int)
	for _, line := range lines {
		rounded := math.Round(line.FontSize*2) / 2
		counts[rounded]++
	}

	bodySize := fallbackBodyFontSize
	maxCount := 0
	for size, count := range counts {
		if count > maxCount || (count == maxCount && size < bodySize) {
			maxCount = count
			bodySize = size
		}
	}
	return bodySize
}

// Split scans lines top-to-bottom and partitions them into the header block
// (everything before the first heading) and one Section per detected heading.
//
// A line is a heading iff all three hold: its normalized text matches a
// keyword, its font size is at least HeadingFontRatio of the body size, and
// its raw text is shorter than MaxHeadingLength. Keyword match alone would
// false-positive on body sentences containing a section word; the font and
// length gates require heading-like prominence and brevity.
func Split(lines []layout.TextLine, opts Options) (headerLines []string, sections []Section) {
	bodySize := BodyFontSize(lines)

	var current *Section
	for _, line := range lines {
		sectionType, ok := sectionKeywords[normalizeHeading(line.Text)]
		if ok && line.FontSize >= bodySize*opts.HeadingFontRatio && utf8.RuneCountInString(line.Text) < opts.MaxHeadingLength {
			// Headings never merge: each match opens a fresh section.
			sections = append(sections, Section{Type: sectionType, Title: line.Text})
			current = &sections[len(sections)-1]
			continue
		}

		if current != nil {
			current.Lines = append(current.Lines, line.Text)
		} else {
			headerLines = append(headerLines, line.Text)
		}
	}

	return headerLines, sections
}
