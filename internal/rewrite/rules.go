package rewrite

import "strings"

const (
	// DescriptionMarker labels the redundant "text question description" parameter.
	DescriptionMarker = "文本题目描述"
	// DescriptionIdentifier must appear on the same line as DescriptionMarker.
	DescriptionIdentifier = "DisplayName"

	// TargetChartLiteral is the quoted display name that gets rewritten.
	TargetChartLiteral = `"目标图表"`
	// TargetWorkbookLiteral replaces TargetChartLiteral.
	TargetWorkbookLiteral = `"目标工作簿"`
)

// Rule selects lines to delete: both Marker and Identifier must be present.
type Rule struct {
	Marker     string
	Identifier string
}

// Matches reports whether line carries both the marker and the identifier.
func (r Rule) Matches(line string) bool {
	return strings.Contains(line, r.Marker) && strings.Contains(line, r.Identifier)
}

// Substitution is an exact, non-regex literal replacement.
type Substitution struct {
	From string
	To   string
}

// Rules bundles the deletion rule with the literal substitution applied afterwards.
type Rules struct {
	Delete     Rule
	Substitute Substitution
}

// DefaultRules is the fixed rule set for the knowledge-point service cleanup.
var DefaultRules = Rules{
	Delete: Rule{
		Marker:     DescriptionMarker,
		Identifier: DescriptionIdentifier,
	},
	Substitute: Substitution{
		From: TargetChartLiteral,
		To:   TargetWorkbookLiteral,
	},
}
