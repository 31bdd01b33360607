package rewrite

import (
	"strings"
	"unicode"
)

// StripTrailingCommaMarkers removes every line matched by rule. When a line is removed and the
// line written just before it ends with a comma (ignoring trailing whitespace), that one comma
// is dropped so the preceding entry becomes the last one in its list.
// The input slice is not modified.
func StripTrailingCommaMarkers(lines []string, rule Rule) ([]string, int) {
	return stripMarkers(lines, rule, nil)
}

// stripMarkers is the single forward pass behind StripTrailingCommaMarkers. onEdit, when set,
// receives every deletion and comma removal in input order.
func stripMarkers(lines []string, rule Rule, onEdit func(Edit)) ([]string, int) {
	out := make([]string, 0, len(lines))
	// origin[i] is the 1-based input line number of out[i].
	origin := make([]int, 0, len(lines))
	deleted := 0

	for i, line := range lines {
		if !rule.Matches(line) {
			out = append(out, line)
			origin = append(origin, i+1)
			continue
		}

		if n := len(out); n > 0 {
			if stripped, ok := stripTrailingComma(out[n-1]); ok {
				if onEdit != nil {
					onEdit(Edit{Kind: EditStripComma, Line: origin[n-1], Before: out[n-1], After: stripped})
				}
				out[n-1] = stripped
			}
		}
		deleted++
		if onEdit != nil {
			onEdit(Edit{Kind: EditDelete, Line: i + 1, Before: line})
		}
	}
	return out, deleted
}

// stripTrailingComma removes the last comma of line when nothing but whitespace follows it.
// The trailing whitespace itself (including a '\r' from CRLF files) is preserved.
func stripTrailingComma(line string) (string, bool) {
	body := strings.TrimRightFunc(line, unicode.IsSpace)
	if !strings.HasSuffix(body, ",") {
		return line, false
	}
	return body[:len(body)-1] + line[len(body):], true
}
