package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"

	"paramclean/internal/core"
	"paramclean/internal/report"
)

// View identifies which screen the preview is showing.
type View int

const (
	ViewPlan View = iota
	ViewApplied
	ViewQuitting
)

// Applier writes a computed plan. *core.Processor satisfies it.
type Applier interface {
	Apply(ctx context.Context, plan *core.Plan) (*report.Summary, error)
}

const (
	lineColWidth = 6
	kindColWidth = 12
	minTextWidth = 20
)

// model is the Bubbletea model for the preview.
type model struct {
	ActiveView View

	plan    *core.Plan
	applier Applier
	table   table.Model

	summary *report.Summary
	err     error

	width  int
	height int
}

// InitialModel builds the preview model for plan.
func InitialModel(plan *core.Plan, applier Applier, width, height int) model {
	m := model{
		plan:    plan,
		applier: applier,
		width:   width,
		height:  height,
	}
	m.table = table.New(
		table.WithColumns(columnsFor(width)),
		table.WithRows(rowsFor(plan, textWidth(width))),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)
	return m
}

func columnsFor(width int) []table.Column {
	return []table.Column{
		{Title: "Line", Width: lineColWidth},
		{Title: "Edit", Width: kindColWidth},
		{Title: "Text", Width: textWidth(width)},
	}
}

func rowsFor(plan *core.Plan, width int) []table.Row {
	rows := make([]table.Row, 0, len(plan.Edits))
	for _, e := range plan.Edits {
		text := e.Before
		if e.After != "" {
			text = e.After
		}
		rows = append(rows, table.Row{
			fmt.Sprint(e.Line),
			e.Kind.String(),
			truncate(strings.TrimSpace(text), width),
		})
	}
	return rows
}

// textWidth is what is left for the text column once the fixed columns and padding are taken.
func textWidth(width int) int {
	return max(width-lineColWidth-kindColWidth-8, minTextWidth)
}

func tableHeight(height int) int {
	return max(height-14, 5)
}

// truncate shortens s to at most width display cells. CJK runes count as two cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
