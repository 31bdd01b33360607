package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"paramclean/internal/report"
	"paramclean/internal/rewrite"
)

// ModelView renders the preview model's view as a string.
func ModelView(m model) string {
	switch m.ActiveView {
	case ViewQuitting:
		return quittingView()
	case ViewApplied:
		return appliedView(m)
	default:
		return planView(m)
	}
}

func quittingView() string {
	return "Goodbye!\n"
}

func planView(m model) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))

	s := m.plan.Summary
	header := headerStyle.Render("Cleanup preview: ") + m.plan.Path + "\n" +
		fmt.Sprintf("%d lines → %d lines, %d deletions, %d substitutions",
			s.OriginalLines, s.NewLines, s.Deleted, s.Substituted)

	if len(m.plan.Edits) == 0 {
		return lipgloss.NewStyle().Padding(1).Render(
			header + "\n\n" + "Nothing to clean up.\n\n" + hintStyle.Render("Press Enter or q to quit."),
		)
	}

	tableBlock := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Render(m.table.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Padding(1).Render(header),
		tableBlock,
		detailView(m),
		hintStyle.Render("Press Enter or y to apply, q/Esc/Ctrl+C to quit without writing."),
	)
}

// detailView shows the full text of the selected edit, wrapped to the terminal width.
func detailView(m model) string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.plan.Edits) {
		return ""
	}
	e := m.plan.Edits[i]
	width := max(m.width-4, minTextWidth)

	var b strings.Builder
	b.WriteString(wrapText("- "+strings.TrimSpace(e.Before), width))
	if e.Kind != rewrite.EditDelete {
		b.WriteString("\n")
		b.WriteString(wrapText("+ "+strings.TrimSpace(e.After), width))
	}
	return lipgloss.NewStyle().Padding(0, 1, 1, 1).Render(b.String())
}

func appliedView(m model) string {
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
		return lipgloss.NewStyle().Padding(1).BorderStyle(lipgloss.DoubleBorder()).Render(
			errStyle.Render("Cleanup failed: ") + m.err.Error() + "\n\nPress any key to quit.",
		)
	}

	var b strings.Builder
	if m.summary != nil {
		_ = report.WriteText(&b, *m.summary)
	}
	return lipgloss.NewStyle().Padding(1).BorderStyle(lipgloss.DoubleBorder()).Render(
		strings.TrimRight(b.String(), "\n") + "\n\nPress any key to quit.",
	)
}
