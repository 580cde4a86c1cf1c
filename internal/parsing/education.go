package parsing

import (
	"regexp"
	"strings"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// midDotSepRe splits "left • right" composite lines as emitted by CV
// templates ("Institution • Year", "Degree • Institution").
var midDotSepRe = regexp.MustCompile(`^(.+?)\s*[•·]\s*(.+)$`)

// ParseEducation turns a section's raw lines into education entries. Besides
// the plain degree → institution fill order, it recognizes the
// "Institution • Year" delimiter form and accepts a bare 4-digit year
// anywhere in a line as sufficient to populate the year field.
func ParseEducation(lines []string) []types.EducationEntry {
	entries := []types.EducationEntry{}

	var acc types.EducationEntry
	active := false

	flush := func() {
		if active && (acc.Institution != "" || acc.Degree != "") {
			acc.ID = types.NewID()
			entries = append(entries, acc)
		}
		acc = types.EducationEntry{}
		active = false
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		year := firstYear(trimmed)

		if sep := midDotSepRe.FindStringSubmatch(trimmed); sep != nil {
			left, right := strings.TrimSpace(sep[1]), strings.TrimSpace(sep[2])
			rightYear := firstYear(right)

			if rightYear != "" {
				switch {
				case active && acc.Degree != "" && acc.Institution == "":
					// Degree came on the previous line; this completes it.
					acc.Institution = left
					acc.Year = rightYear
				case active && acc.Degree != "" && acc.Institution != "":
					flush()
					acc = types.EducationEntry{Institution: left, Year: rightYear}
					active = true
				case active && acc.Degree == "":
					acc.Institution = left
					acc.Year = rightYear
				default:
					acc = types.EducationEntry{Institution: left, Year: rightYear}
					active = true
				}
			} else {
				flush()
				acc = types.EducationEntry{Degree: left, Institution: right}
				active = true
			}
			continue
		}

		if !active {
			acc = types.EducationEntry{}
			active = true
		}

		switch {
		case year != "" && acc.Year == "":
			acc.Year = year
			if rest := stripYearAndSeparators(trimmed); rest != "" {
				if acc.Institution == "" {
					acc.Institution = rest
				} else if acc.Degree == "" {
					acc.Degree = rest
				}
			}
		case acc.Degree == "":
			acc.Degree = trimmed
		case acc.Institution == "":
			acc.Institution = trimmed
		default:
			flush()
			acc = types.EducationEntry{Degree: trimmed}
			active = true
		}
	}

	flush()
	return entries
}
