// Package extraction adapts the underlying PDF library to the narrow
// fragment primitive consumed by the rest of the import pipeline. No
// library-specific type leaks past this package.
package extraction

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextFragment is one positioned run of text from the PDF text layer.
// YGlobal is a page-independent top-down coordinate (cumulative page offset
// plus within-page offset), so cross-page ordering needs no special casing.
type TextFragment struct {
	Text     string
	X        float64
	YGlobal  float64
	FontSize float64
}

const (
	// defaultPageHeight is used when a page carries no usable MediaBox (US Letter points).
	defaultPageHeight = 792.0

	// wordGapFactor is the inter-run gap (relative to font size) above which
	// a space is inserted between coalesced runs.
	wordGapFactor = 0.25

	// fragmentGapFactor is the gap above which runs stay separate fragments
	// (column gutters, tab stops).
	fragmentGapFactor = 1.5

	// baselineEpsilon is the Y tolerance for treating two runs as the same
	// baseline during coalescing. Looser baseline merging belongs to the
	// line assembler, not here.
	baselineEpsilon = 0.2
)

// ExtractFragments decodes PDF bytes and returns every text fragment in the
// document, page by page, with page-global coordinates. It is the only place
// a hard failure (corrupt or unsupported PDF) can originate; an image-only
// PDF decodes successfully into zero fragments.
func ExtractFragments(data []byte) (fragments []TextFragment, err error) {
	// The underlying reader panics on malformed files.
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = &DecodeError{Message: fmt.Sprintf("malformed PDF: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Message: "failed to open PDF", Cause: err}
	}

	pageOffset := 0.0
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		height := pageHeight(page)
		fragments = append(fragments, fragmentsFromRuns(page.Content().Text, pageOffset, height)...)
		pageOffset += height
	}

	return fragments, nil
}

// pageHeight reads the page height from the MediaBox, falling back to US
// Letter when the box is missing or degenerate.
func pageHeight(page pdf.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.Len() == 4 {
		if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
			return h
		}
	}
	return defaultPageHeight
}

// fragmentsFromRuns coalesces the library's per-glyph runs into word-level
// fragments and converts the page's bottom-up baselines into top-down global
// coordinates. The pdf.js text layer the original pipeline was built against
// hands back word-level items; this adapter owns that impedance mismatch.
func fragmentsFromRuns(runs []pdf.Text, pageOffset, height float64) []TextFragment {
	if len(runs) == 0 {
		return nil
	}

	// Order runs top-to-bottom (PDF Y grows upward), then left-to-right, so
	// a single pass can coalesce adjacent runs on the same baseline.
	ordered := make([]pdf.Text, len(runs))
	copy(ordered, runs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Y != ordered[j].Y {
			return ordered[i].Y > ordered[j].Y
		}
		return ordered[i].X < ordered[j].X
	})

	var fragments []TextFragment
	var sb strings.Builder
	var cur TextFragment
	curY, endX := 0.0, 0.0
	open := false

	flush := func() {
		if !open {
			return
		}
		cur.Text = strings.Join(strings.Fields(sb.String()), " ")
		if cur.Text != "" {
			fragments = append(fragments, cur)
		}
		sb.Reset()
		open = false
	}

	for _, run := range ordered {
		sameBaseline := open && abs(run.Y-curY) < baselineEpsilon
		gap := run.X - endX

		fontSize := run.FontSize
		breakGap := fragmentGapFactor * fontSize
		if breakGap <= 0 {
			breakGap = fragmentGapFactor
		}

		if !sameBaseline || gap > breakGap {
			flush()
			cur = TextFragment{
				X:        run.X,
				YGlobal:  pageOffset + (height - run.Y),
				FontSize: run.FontSize,
			}
			curY = run.Y
			endX = run.X + run.W
			sb.WriteString(run.S)
			open = true
			continue
		}

		if gap > wordGapFactor*fontSize {
			sb.WriteString(" ")
		}
		sb.WriteString(run.S)
		if run.FontSize > cur.FontSize {
			cur.FontSize = run.FontSize
		}
		if end := run.X + run.W; end > endX {
			endX = end
		}
	}
	flush()

	return fragments
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
