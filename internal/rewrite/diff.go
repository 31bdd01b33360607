package rewrite

import "strings"

// EditKind identifies what happened to a line.
type EditKind int

const (
	EditDelete EditKind = iota
	EditStripComma
	EditSubstitute
)

func (k EditKind) String() string {
	switch k {
	case EditDelete:
		return "delete"
	case EditStripComma:
		return "strip-comma"
	case EditSubstitute:
		return "substitute"
	}
	return "unknown"
}

// Edit describes one change Apply makes. Line is the 1-based line number in the input;
// After is empty for deletions.
type Edit struct {
	Kind   EditKind
	Line   int
	Before string
	After  string
}

// Diff lists the edits Apply would make to lines, in input order of discovery: deletions and
// comma removals first, then substitutions on the surviving lines.
func Diff(lines []string, rules Rules) []Edit {
	var edits []Edit
	origins := make([]int, 0, len(lines))

	kept, _ := stripMarkers(lines, rules.Delete, func(e Edit) {
		edits = append(edits, e)
	})

	// Recover each surviving line's input position; deletions are the only gaps.
	removed := make(map[int]struct{})
	for _, e := range edits {
		if e.Kind == EditDelete {
			removed[e.Line] = struct{}{}
		}
	}
	for i := range lines {
		if _, ok := removed[i+1]; !ok {
			origins = append(origins, i+1)
		}
	}

	from, to := rules.Substitute.From, rules.Substitute.To
	if from == "" {
		return edits
	}
	for i, line := range kept {
		if !strings.Contains(line, from) {
			continue
		}
		edits = append(edits, Edit{
			Kind:   EditSubstitute,
			Line:   origins[i],
			Before: line,
			After:  strings.ReplaceAll(line, from, to),
		})
	}
	return edits
}
