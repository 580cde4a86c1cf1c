package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// ParseExperience turns a section's raw lines into dated experience entries.
//
// A date-range line flushes the current entry and opens a new one: the text
// before the range becomes the title, the text after it the location.
// Bulleted lines append to the current entry and never start one. Any other
// line fills the first empty slot in priority order title → company →
// location, or flushes and restarts when all slots are taken (entries with
// no explicit date line). Entries with neither title nor company are dropped.
func ParseExperience(lines []string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}

	var acc types.ExperienceEntry
	active := false

	flush := func() {
		if active && (acc.Title != "" || acc.Company != "") {
			acc.ID = types.NewID()
			if acc.Bullets == nil {
				acc.Bullets = []string{}
			}
			entries = append(entries, acc)
		}
		acc = types.ExperienceEntry{}
		active = false
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if isBullet(trimmed) {
			if active {
				acc.Bullets = append(acc.Bullets, stripBullet(trimmed))
			}
			continue
		}

		if r, ok := ExtractDateRange(trimmed); ok {
			flush()
			acc = types.ExperienceEntry{
				Title:     r.Before,
				Location:  r.After,
				StartDate: r.Start,
				EndDate:   r.End,
			}
			active = true
			continue
		}

		switch {
		case !active:
			acc = types.ExperienceEntry{Title: trimmed}
			active = true
		case acc.Title != "" && acc.Company == "":
			acc.Company = trimmed
		case acc.Title != "" && acc.Location == "" && utf8.RuneCountInString(trimmed) < 50:
			acc.Location = trimmed
		default:
			flush()
			acc = types.ExperienceEntry{Title: trimmed}
			active = true
		}
	}

	flush()
	return entries
}
