package parsing

import (
	"strings"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// ParseReferences turns a section's raw lines into reference entries. Unlike
// the other parsers, a blank line is an explicit entry separator. Email and
// phone lines are detected by pattern and assigned directly regardless of
// fill position; remaining lines fill name → "title, company" → company.
func ParseReferences(lines []string) []types.ReferenceEntry {
	entries := []types.ReferenceEntry{}

	var acc types.ReferenceEntry

	flush := func() {
		if acc.Name != "" {
			acc.ID = types.NewID()
			entries = append(entries, acc)
		}
		acc = types.ReferenceEntry{}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}

		digits := nonDigitRe.ReplaceAllString(trimmed, "")

		switch {
		case emailRe.MatchString(trimmed):
			acc.Email = emailRe.FindString(trimmed)
		case phoneRe.MatchString(trimmed) && len(digits) >= 7:
			acc.Phone = phoneRe.FindString(trimmed)
		case acc.Name == "":
			acc.Name = trimmed
		case acc.Title == "":
			parts := strings.SplitN(trimmed, ",", 2)
			acc.Title = strings.TrimSpace(parts[0])
			if len(parts) > 1 {
				acc.Company = strings.TrimSpace(parts[1])
			}
		case acc.Company == "":
			acc.Company = trimmed
		}
	}

	flush()
	return entries
}
