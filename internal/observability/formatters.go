// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/sucreistaken/cv-importer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPersonalInfo outputs the contact details parsed from the header.
func (p *Printer) PrintPersonalInfo(info *types.PersonalInfo) {
	if info == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", info.FullName))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", info.JobTitle))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", info.Phone))
	sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))
	if info.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", info.LinkedIn))
	}
	if info.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:   %s\n", info.GitHub))
	}
	if info.Website != "" {
		sb.WriteString(fmt.Sprintf("Website:  %s\n", info.Website))
	}

	p.printBox("PERSONAL INFO", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocumentSummary outputs per-section entry counts for an imported document.
func (p *Printer) PrintDocumentSummary(doc *types.CVDocument) {
	if doc == nil {
		return
	}

	counts := []struct {
		label string
		n     int
	}{
		{"Experience", len(doc.Experience)},
		{"Projects", len(doc.Projects)},
		{"Education", len(doc.Education)},
		{"Involvement", len(doc.Involvement)},
		{"Skill categories", len(doc.Skills)},
		{"Certifications", len(doc.Certifications)},
		{"Languages", len(doc.Languages)},
		{"Awards", len(doc.Awards)},
		{"References", len(doc.References)},
	}

	var sb strings.Builder
	if doc.Summary != "" {
		sb.WriteString("Summary:  present\n")
	}
	for _, c := range counts {
		if c.n > 0 {
			sb.WriteString(fmt.Sprintf("%-18s %d\n", c.label+":", c.n))
		}
	}
	if doc.Hobbies != "" {
		sb.WriteString("Hobbies:  present\n")
	}
	if sb.Len() == 0 {
		sb.WriteString("No recognizable content found")
	}

	p.printBox("IMPORTED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the first few parsed experience entries.
func (p *Printer) PrintExperience(entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parsed %d entries:\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("• %s", e.Title))
		if e.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", e.Company))
		}
		sb.WriteString("\n")
		if e.StartDate != "" || e.EndDate != "" {
			sb.WriteString(fmt.Sprintf("  %s - %s\n", e.StartDate, e.EndDate))
		}
		if len(e.Bullets) > 0 {
			sb.WriteString(fmt.Sprintf("  %d bullets\n", len(e.Bullets)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE", sb.String())
}
