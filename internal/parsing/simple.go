package parsing

import "strings"

// ParseSummary joins a summary section's lines into one paragraph.
func ParseSummary(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, " "))
}

// ParseHobbies joins a hobbies section's lines into one comma-separated string.
func ParseHobbies(lines []string) string {
	return strings.Trim(strings.Join(lines, ", "), ", ")
}
