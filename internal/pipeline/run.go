// Package pipeline orchestrates the PDF import stages: fragment extraction,
// line assembly, section segmentation, per-section parsing, and document
// assembly.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/sucreistaken/cv-importer/internal/extraction"
	"github.com/sucreistaken/cv-importer/internal/layout"
	"github.com/sucreistaken/cv-importer/internal/parsing"
	"github.com/sucreistaken/cv-importer/internal/segment"
	"github.com/sucreistaken/cv-importer/internal/types"
)

// Options holds the pipeline tunables.
type Options struct {
	Segment segment.Options
}

// Importer runs the import pipeline. It holds no mutable state between
// imports, so a single Importer is safe for concurrent use; callers are
// responsible for serializing or discarding superseded results.
type Importer struct {
	opts Options
}

// New returns an Importer with the given options; zero-valued segmentation
// options fall back to the defaults.
func New(opts Options) *Importer {
	if opts.Segment.HeadingFontRatio == 0 {
		opts.Segment.HeadingFontRatio = segment.DefaultOptions().HeadingFontRatio
	}
	if opts.Segment.MaxHeadingLength == 0 {
		opts.Segment.MaxHeadingLength = segment.DefaultOptions().MaxHeadingLength
	}
	return &Importer{opts: opts}
}

// Import reconstructs a structured CV document from PDF bytes. It fails only
// when the PDF itself cannot be decoded; a decodable PDF with nothing
// recognizable yields a structurally valid, mostly empty document; callers
// should check CVDocument.IsEmpty to warn the user.
func (imp *Importer) Import(ctx context.Context, data []byte) (*types.CVDocument, error) {
	fragments, err := extraction.ExtractFragments(data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from PDF: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return imp.ImportFragments(fragments), nil
}

// ImportFile reads a PDF from disk and imports it.
func (imp *Importer) ImportFile(ctx context.Context, path string) (*types.CVDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF file: %w", err)
	}
	return imp.Import(ctx, data)
}

// ImportFragments runs every stage after PDF decoding. Split out so tests
// and alternate fragment sources can exercise the heuristics without a real
// PDF in front of them.
func (imp *Importer) ImportFragments(fragments []extraction.TextFragment) *types.CVDocument {
	lines := layout.AssembleLines(fragments)
	headerLines, sections := segment.Split(lines, imp.opts.Segment)

	doc := types.NewCVDocument()
	doc.PersonalInfo = parsing.ParsePersonalInfo(headerLines)

	for _, section := range sections {
		switch section.Type {
		case types.SectionSummary:
			doc.Summary = parsing.ParseSummary(section.Lines)
		case types.SectionExperience:
			doc.Experience = parsing.ParseExperience(section.Lines)
		case types.SectionProjects:
			doc.Projects = parsing.ParseProjects(section.Lines)
		case types.SectionEducation:
			doc.Education = parsing.ParseEducation(section.Lines)
		case types.SectionInvolvement:
			doc.Involvement = parsing.ParseInvolvement(section.Lines)
		case types.SectionSkills:
			doc.Skills = parsing.ParseSkills(section.Lines)
		case types.SectionCertifications:
			doc.Certifications = parsing.ParseCertifications(section.Lines)
		case types.SectionLanguages:
			doc.Languages = parsing.ParseLanguages(section.Lines)
		case types.SectionAwards:
			doc.Awards = parsing.ParseAwards(section.Lines)
		case types.SectionHobbies:
			doc.Hobbies = parsing.ParseHobbies(section.Lines)
		case types.SectionReferences:
			doc.References = parsing.ParseReferences(section.Lines)
		}
	}

	// The section list is regenerated from scratch on every import; it is
	// never merged with a prior document's ordering.
	doc.Sections = types.NewSectionList(doc)
	return doc
}
