package tui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"paramclean/internal/core"
)

// wrapText wraps input text to lines no longer than maxWidth display cells.
// It wraps on word boundaries and falls back to cutting by cells for long runs
// without spaces, which is common in CJK text.
func wrapText(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var lineBuilder strings.Builder
		lineWidth := 0
		flush := func() {
			lines = append(lines, lineBuilder.String())
			lineBuilder.Reset()
			lineWidth = 0
		}
		for _, word := range words {
			for runewidth.StringWidth(word) > maxWidth {
				if lineWidth > 0 {
					flush()
				}
				head := runewidth.Truncate(word, maxWidth, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			wordWidth := runewidth.StringWidth(word)
			if wordWidth == 0 {
				continue
			}
			addedWidth := wordWidth
			if lineWidth > 0 {
				addedWidth++
			}
			if lineWidth+addedWidth > maxWidth {
				flush()
				addedWidth = wordWidth
			}
			if lineWidth > 0 {
				lineBuilder.WriteString(" ")
			}
			lineBuilder.WriteString(word)
			lineWidth += addedWidth
		}
		if lineWidth > 0 {
			flush()
		}
	}
	return strings.Join(lines, "\n")
}

// Init initializes the preview model and returns any initial commands to run.
func (m model) Init() tea.Cmd {
	return nil
}

// Run launches the preview for plan. Applying goes through applier.
func Run(plan *core.Plan, applier Applier) error {
	m := InitialModel(plan, applier, 100, 30)
	p := tea.NewProgram(&teaModelAdapter{m}, tea.WithAltScreen())

	_, err := p.Run()
	return err
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
