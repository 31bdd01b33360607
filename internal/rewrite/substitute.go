package rewrite

import "strings"

// SubstituteLiteral replaces every occurrence of from with to on each line. Matching is exact
// and non-overlapping. An empty from leaves the lines untouched.
func SubstituteLiteral(lines []string, from, to string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if from == "" {
			out[i] = line
			continue
		}
		out[i] = strings.ReplaceAll(line, from, to)
	}
	return out
}

// Apply runs the deletion pass followed by the substitution and returns the resulting lines
// with the number of deleted lines.
func Apply(lines []string, rules Rules) ([]string, int) {
	kept, deleted := StripTrailingCommaMarkers(lines, rules.Delete)
	return SubstituteLiteral(kept, rules.Substitute.From, rules.Substitute.To), deleted
}
