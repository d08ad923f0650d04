package service

import (
	"regexp"
	"strings"
)

var (
	quoteStripper = strings.NewReplacer(`'`, "", `"`, "")
	nonAlnumRuns  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify converts arbitrary text into a URL-safe identifier: lowercased,
// trimmed, quotes stripped, runs of non-alphanumeric characters collapsed to
// single hyphens. May return "" for degenerate input such as all-punctuation
// titles.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = quoteStripper.Replace(s)
	s = nonAlnumRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
