package source

import (
	"regexp"
	"strings"
)

var (
	nonIdentChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// CleanColumn normalizes a column header into a lowercase identifier:
// spaces become underscores, characters outside [a-z0-9_] are dropped and
// runs of underscores collapse to one.
//
//	"Column Name!" -> "column_name"
//	"Column名稱"    -> "column"
func CleanColumn(col string) string {
	s := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(col)), " ", "_")
	return underscoreRun.ReplaceAllString(nonIdentChars.ReplaceAllString(s, ""), "_")
}

// CleanColumns applies CleanColumn to each element.
func CleanColumns(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = CleanColumn(c)
	}
	return out
}
