// Package layout clusters positioned text fragments into visual lines.
package layout

import (
	"sort"
	"strings"

	"github.com/sucreistaken/cv-importer/internal/extraction"
)

// TextLine is one visually contiguous row of text, ordered top-to-bottom in
// the assembled result. FontSize is the largest font size seen on the line.
type TextLine struct {
	Text     string
	Y        float64
	FontSize float64
}

// minThreshold is the floor for the clustering tolerance band, in points.
// Same-line glyph runs can report slightly different baselines (superscripts,
// kerning artifacts), so exact Y equality would over-split lines.
const minThreshold = 2.0

type bucket struct {
	y         float64
	fontSize  float64
	fragments []extraction.TextFragment
}

// AssembleLines clusters fragments into lines using vertical proximity: a
// fragment joins the nearest open bucket whose representative Y lies within
// max(fontSize*0.5, 2) of its own, otherwise it opens a new bucket. Buckets
// are emitted top-to-bottom, their fragments joined left-to-right with
// single spaces. The result is deterministic for a fixed input.
func AssembleLines(fragments []extraction.TextFragment) []TextLine {
	var buckets []*bucket

	for _, fragment := range fragments {
		threshold := fragment.FontSize * 0.5
		if threshold < minThreshold {
			threshold = minThreshold
		}

		// Bind to the nearest bucket within the tolerance band, not the
		// first one found: on dense multi-column layouts two buckets can
		// both fall inside the band, and first-found binding merges rows
		// that belong apart.
		var match *bucket
		best := threshold
		for _, b := range buckets {
			if d := abs(b.y - fragment.YGlobal); d < best {
				best = d
				match = b
			}
		}

		if match != nil {
			match.fragments = append(match.fragments, fragment)
			if fragment.FontSize > match.fontSize {
				match.fontSize = fragment.FontSize
			}
			continue
		}

		buckets = append(buckets, &bucket{
			y:         fragment.YGlobal,
			fontSize:  fragment.FontSize,
			fragments: []extraction.TextFragment{fragment},
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].y < buckets[j].y })

	lines := make([]TextLine, 0, len(buckets))
	for _, b := range buckets {
		sort.SliceStable(b.fragments, func(i, j int) bool { return b.fragments[i].X < b.fragments[j].X })

		parts := make([]string, 0, len(b.fragments))
		for _, fragment := range b.fragments {
			parts = append(parts, fragment.Text)
		}
		text := strings.TrimSpace(strings.Join(parts, " "))
		if text == "" {
			continue
		}

		lines = append(lines, TextLine{Text: text, Y: b.y, FontSize: b.fontSize})
	}

	return lines
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
