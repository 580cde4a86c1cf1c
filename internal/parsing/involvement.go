package parsing

import (
	"strings"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// ParseInvolvement turns a section's raw lines into involvement entries.
// Same date-anchored state machine as experience, with slot priority
// role → organization → institution; a date-range line maps its trailing
// text to institution rather than location.
func ParseInvolvement(lines []string) []types.InvolvementEntry {
	entries := []types.InvolvementEntry{}

	var acc types.InvolvementEntry
	active := false

	flush := func() {
		if active && (acc.Role != "" || acc.Organization != "") {
			acc.ID = types.NewID()
			if acc.Bullets == nil {
				acc.Bullets = []string{}
			}
			entries = append(entries, acc)
		}
		acc = types.InvolvementEntry{}
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
			acc = types.InvolvementEntry{
				Role:        r.Before,
				Institution: r.After,
				StartDate:   r.Start,
				EndDate:     r.End,
			}
			active = true
			continue
		}

		switch {
		case !active:
			acc = types.InvolvementEntry{Role: trimmed}
			active = true
		case acc.Role != "" && acc.Organization == "":
			acc.Organization = trimmed
		case acc.Role != "" && acc.Institution == "":
			acc.Institution = trimmed
		default:
			flush()
			acc = types.InvolvementEntry{Role: trimmed}
			active = true
		}
	}

	flush()
	return entries
}
