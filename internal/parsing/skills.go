package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// maxCategoryLength is how far into a line a colon may sit and still be read
// as a "Category: item, item" delimiter rather than sentence punctuation.
const maxCategoryLength = 35

// generalCategory collects uncategorized skill lines.
const generalCategory = "General"

// ParseSkills turns a section's raw lines into skill categories. Lines with
// an early colon split into category and items; everything else accumulates,
// comma-joined, under a synthetic "General" category.
func ParseSkills(lines []string) []types.SkillCategory {
	categories := []types.SkillCategory{}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if colon := strings.Index(trimmed, ":"); colon > 0 && utf8.RuneCountInString(trimmed[:colon]) < maxCategoryLength {
			category := strings.TrimSpace(trimmed[:colon])
			items := strings.TrimSpace(trimmed[colon+1:])
			if items != "" {
				categories = append(categories, types.SkillCategory{
					ID:       types.NewID(),
					Category: category,
					Items:    items,
				})
				continue
			}
		}

		general := -1
		for i := range categories {
			if categories[i].Category == generalCategory {
				general = i
				break
			}
		}
		if general >= 0 {
			if categories[general].Items != "" {
				categories[general].Items += ", " + trimmed
			} else {
				categories[general].Items = trimmed
			}
		} else {
			categories = append(categories, types.SkillCategory{
				ID:       types.NewID(),
				Category: generalCategory,
				Items:    trimmed,
			})
		}
	}

	return categories
}
