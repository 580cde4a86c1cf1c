package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// proficiencyLevels maps recognized level tokens (English and Turkish) to the
// four canonical proficiency values.
var proficiencyLevels = map[string]types.Proficiency{
	"native":        types.ProficiencyNative,
	"ana dil":       types.ProficiencyNative,
	"mother tongue": types.ProficiencyNative,
	"fluent":        types.ProficiencyFluent,
	"ileri":         types.ProficiencyFluent,
	"advanced":      types.ProficiencyFluent,
	"intermediate":  types.ProficiencyIntermediate,
	"orta":          types.ProficiencyIntermediate,
	"beginner":      types.ProficiencyBeginner,
	"başlangıç":     types.ProficiencyBeginner,
	"basic":         types.ProficiencyBeginner,
	"temel":         types.ProficiencyBeginner,
	"elementary":    types.ProficiencyBeginner,
}

var (
	// langLevelRe matches "Language (Level)", "Language - Level" and
	// "Language: Level" forms.
	langLevelRe = regexp.MustCompile(`^(.+?)\s*[(\-–—:]\s*(.+?)\s*\)?$`)

	// langTwoWordRe matches the bare "Language Level" two-word form.
	langTwoWordRe = regexp.MustCompile(`(?i)^(\S+)\s+(Native|Fluent|Intermediate|Beginner|Advanced|Basic|Ana\s+Dil|İleri|Orta|Başlangıç|Temel)$`)

	langSplitRe = regexp.MustCompile(`[,;]`)
)

// ParseLanguages turns a section's raw lines into language entries. Lines
// split on commas/semicolons into candidate tokens; unrecognized level
// tokens default to intermediate.
func ParseLanguages(lines []string) []types.LanguageEntry {
	entries := []types.LanguageEntry{}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		for _, part := range langSplitRe.Split(trimmed, -1) {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}

			if m := langLevelRe.FindStringSubmatch(p); m != nil {
				entries = append(entries, types.LanguageEntry{
					ID:          types.NewID(),
					Language:    strings.TrimSpace(m[1]),
					Proficiency: lookupProficiency(m[2]),
				})
				continue
			}

			if length := utf8.RuneCountInString(p); length > 1 && length < 30 {
				if m := langTwoWordRe.FindStringSubmatch(p); m != nil {
					entries = append(entries, types.LanguageEntry{
						ID:          types.NewID(),
						Language:    m[1],
						Proficiency: lookupProficiency(m[2]),
					})
				} else {
					entries = append(entries, types.LanguageEntry{
						ID:          types.NewID(),
						Language:    p,
						Proficiency: types.ProficiencyIntermediate,
					})
				}
			}
		}
	}

	return entries
}

// lookupProficiency maps a raw level token to a canonical proficiency,
// defaulting to intermediate when the token is not recognized. Tokens are
// lowered twice: standard case first, then Turkish case, because "İleri"
// lowers to "i̇leri" (dotted i) under standard rules and misses the table.
func lookupProficiency(level string) types.Proficiency {
	token := strings.TrimSpace(level)
	if p, ok := proficiencyLevels[strings.ToLower(token)]; ok {
		return p
	}
	if p, ok := proficiencyLevels[strings.ToLowerSpecial(unicode.TurkishCase, token)]; ok {
		return p
	}
	return types.ProficiencyIntermediate
}
