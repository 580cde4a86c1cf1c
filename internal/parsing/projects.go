package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// maxMetadataLineLength bounds how long a line can be and still count as a
// "link • date" metadata line for the current project rather than a new one.
const maxMetadataLineLength = 80

// ParseProjects turns a section's raw lines into project entries. Unlike the
// other dated parsers, a project's date and link are usually embedded in the
// title line itself, so new-entry lines are post-processed to peel them out;
// short follow-up lines carrying only a URL or date fold into the current
// entry as metadata.
func ParseProjects(lines []string) []types.ProjectEntry {
	entries := []types.ProjectEntry{}

	var acc types.ProjectEntry
	active := false

	flush := func() {
		if active && acc.Name != "" {
			acc.ID = types.NewID()
			if acc.Bullets == nil {
				acc.Bullets = []string{}
			}
			entries = append(entries, acc)
		}
		acc = types.ProjectEntry{}
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

		if active && acc.Name != "" {
			hasURL := urlRe.MatchString(trimmed)
			dateMatch := dateRangeRe.FindString(trimmed)
			year := firstYear(trimmed)

			// Metadata line for the current project, not a new one.
			if (hasURL || dateMatch != "" || year != "") && utf8.RuneCountInString(trimmed) < maxMetadataLineLength {
				if hasURL && acc.Link == "" {
					acc.Link = urlRe.FindString(trimmed)
				}
				if dateMatch != "" && acc.Date == "" {
					acc.Date = dateMatch
				} else if year != "" && acc.Date == "" {
					acc.Date = year
				}
				continue
			}

			flush()
		}

		acc = projectFromTitle(trimmed)
		active = true
	}

	flush()
	return entries
}

// projectFromTitle builds a project entry from a title line, extracting any
// inline date range and URL out of the name.
func projectFromTitle(text string) types.ProjectEntry {
	entry := types.ProjectEntry{Name: text}

	if r, ok := ExtractDateRange(text); ok {
		entry.Date = r.Start + " - " + r.End
		if r.Before != "" {
			entry.Name = r.Before
		} else {
			entry.Name = r.After
		}
	}

	if url := urlRe.FindString(entry.Name); url != "" {
		entry.Link = url
		entry.Name = strings.TrimRight(urlRe.ReplaceAllString(entry.Name, ""), "|,•· \t")
		entry.Name = strings.TrimSpace(entry.Name)
	}

	return entry
}
