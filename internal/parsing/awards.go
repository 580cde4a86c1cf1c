package parsing

import (
	"strings"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// ParseAwards turns a section's raw lines into award entries. Slots fill
// title → issuer, with a year peeled from whichever line carries one; a
// third unconsumed line flushes the entry and starts the next.
func ParseAwards(lines []string) []types.AwardEntry {
	entries := []types.AwardEntry{}

	var acc types.AwardEntry
	active := false

	flush := func() {
		if active && acc.Title != "" {
			acc.ID = types.NewID()
			entries = append(entries, acc)
		}
		acc = types.AwardEntry{}
		active = false
	}

	startEntry := func(trimmed, year string) {
		acc = types.AwardEntry{Title: trimmed, Year: year}
		if year != "" {
			acc.Title = stripYearAndSeparators(trimmed)
		}
		active = true
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		year := firstYear(trimmed)

		switch {
		case !active:
			startEntry(trimmed, year)
		case acc.Issuer == "":
			acc.Issuer = trimmed
			if year != "" && acc.Year == "" {
				acc.Year = year
			}
		default:
			flush()
			startEntry(trimmed, year)
		}
	}

	flush()
	return entries
}
