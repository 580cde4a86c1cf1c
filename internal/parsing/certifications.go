package parsing

import (
	"strings"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// ParseCertifications turns a section's raw lines into certification
// entries. Slots fill name → issuer → year, with an "issuer • year" combined
// line accepted for the second slot; bulleted lines concatenate into a
// single description paragraph rather than a bullet list, matching how
// certifications are displayed.
func ParseCertifications(lines []string) []types.CertificationEntry {
	entries := []types.CertificationEntry{}

	var acc types.CertificationEntry
	active := false

	flush := func() {
		if active && acc.Name != "" {
			acc.ID = types.NewID()
			entries = append(entries, acc)
		}
		acc = types.CertificationEntry{}
		active = false
	}

	startEntry := func(trimmed, year string) {
		acc = types.CertificationEntry{Name: trimmed}
		if year != "" {
			acc.Year = year
			acc.Name = stripYearAndSeparators(trimmed)
		}
		active = true
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if isBullet(trimmed) && active {
			text := stripBullet(trimmed)
			if acc.Description != "" {
				acc.Description += " " + text
			} else {
				acc.Description = text
			}
			continue
		}

		year := firstYear(trimmed)

		switch {
		case !active:
			startEntry(trimmed, year)
		case acc.Issuer == "":
			if sep := midDotSepRe.FindStringSubmatch(trimmed); sep != nil {
				acc.Issuer = strings.TrimSpace(sep[1])
				if y := firstYear(sep[2]); y != "" {
					acc.Year = y
				}
			} else {
				acc.Issuer = trimmed
				if year != "" && acc.Year == "" {
					acc.Year = year
				}
			}
		default:
			flush()
			startEntry(trimmed, year)
		}
	}

	flush()
	return entries
}
