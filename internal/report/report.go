package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Summary holds the counts reported after a cleanup run.
type Summary struct {
	Path             string `yaml:"path"`
	OriginalLines    int    `yaml:"original_lines"`
	NewLines         int    `yaml:"new_lines"`
	Deleted          int    `yaml:"deleted_parameters"`
	Substituted      int    `yaml:"substituted_literals"`
	RemainingMarkers int    `yaml:"remaining_markers"`
	DryRun           bool   `yaml:"dry_run,omitempty"`
}

// Format selects how a Summary is written.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q, expected text or yaml", s)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
)

// Write renders s to w in the given format.
func Write(w io.Writer, s Summary, format Format) error {
	switch format {
	case FormatYAML:
		return WriteYAML(w, s)
	default:
		return WriteText(w, s)
	}
}

// WriteText prints the five status lines, plus a note when nothing was written.
func WriteText(w io.Writer, s Summary) error {
	remaining := fmt.Sprint(s.RemainingMarkers)
	if s.RemainingMarkers > 0 {
		remaining = warnStyle.Render(remaining)
	}
	lines := []string{
		headerStyle.Render("Cleanup completed!"),
		labelStyle.Render("Original lines:") + fmt.Sprintf(" %d", s.OriginalLines),
		labelStyle.Render("New lines:") + fmt.Sprintf(" %d", s.NewLines),
		labelStyle.Render("Deleted parameters:") + fmt.Sprintf(" %d", s.Deleted),
		labelStyle.Render("Remaining markers:") + " " + remaining,
	}
	if s.DryRun {
		lines = append(lines, warnStyle.Render("(dry run, nothing written)"))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// WriteYAML encodes s as a single YAML document.
func WriteYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return enc.Close()
}
