package domain

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title.
// Runs of characters outside [a-z0-9] become a single '-', and leading or
// trailing separators are trimmed.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// SplitList turns a comma-separated string into a list of trimmed, non-empty entries.
func SplitList(csv string) []string {
	return CleanList(strings.Split(csv, ","))
}

// CleanList trims every entry and drops empty ones. Entries are kept whole,
// commas included.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
