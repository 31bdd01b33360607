package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"paramclean/internal/core"
	"paramclean/internal/report"
)

// Message types for Bubbletea update loop
type appliedMsg struct {
	summary *report.Summary
	err     error
}

// applyCmd writes the plan in the background and reports the outcome.
func applyCmd(applier Applier, plan *core.Plan) tea.Cmd {
	return func() tea.Msg {
		summary, err := applier.Apply(context.Background(), plan)
		return appliedMsg{summary: summary, err: err}
	}
}

// Update handles all Bubbletea update logic for the preview model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case appliedMsg:
		return handleAppliedMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	default:
		if m.ActiveView == ViewPlan {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	k := msg.String()

	switch m.ActiveView {
	case ViewQuitting:
		return m, nil

	case ViewApplied:
		m.ActiveView = ViewQuitting
		return m, tea.Quit

	case ViewPlan:
		switch k {
		case "ctrl+c", "q", "esc":
			m.ActiveView = ViewQuitting
			return m, tea.Quit
		case "enter", "y":
			if len(m.plan.Edits) == 0 {
				m.ActiveView = ViewQuitting
				return m, tea.Quit
			}
			return m, applyCmd(m.applier, m.plan)
		default:
			// Forward navigation keys to the table.
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func handleAppliedMsg(m model, msg appliedMsg) (model, tea.Cmd) {
	m.summary = msg.summary
	m.err = msg.err
	m.ActiveView = ViewApplied
	return m, nil
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.table.SetColumns(columnsFor(m.width))
	m.table.SetRows(rowsFor(m.plan, textWidth(m.width)))
	m.table.SetWidth(m.width)
	m.table.SetHeight(tableHeight(m.height))
	return m, nil
}
