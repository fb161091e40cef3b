package collection

import (
	"regexp"
	"strings"
)

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a collection name: lowercased, runs of
// non-alphanumeric characters collapsed to a single dash, leading and
// trailing dashes trimmed. Idempotent.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonSlugRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
