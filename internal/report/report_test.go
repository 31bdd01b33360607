package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"YAML", FormatYAML, false},
		{" yaml ", FormatYAML, false},
		{"json", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	s := Summary{OriginalLines: 10, NewLines: 8, Deleted: 2, RemainingMarkers: 0}
	require.NoError(t, WriteText(&buf, s))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Cleanup completed!")
	assert.Contains(t, lines[1], "Original lines:")
	assert.Contains(t, lines[1], "10")
	assert.Contains(t, lines[2], "New lines:")
	assert.Contains(t, lines[2], "8")
	assert.Contains(t, lines[3], "Deleted parameters:")
	assert.Contains(t, lines[3], "2")
	assert.Contains(t, lines[4], "Remaining markers:")
	assert.NotContains(t, out, "dry run")
}

func TestWriteText_DryRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Summary{DryRun: true}))
	assert.Contains(t, buf.String(), "(dry run, nothing written)")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	s := Summary{Path: "a.cs", OriginalLines: 4, NewLines: 3, Deleted: 1, Substituted: 2}
	require.NoError(t, Write(&buf, s, FormatYAML))

	var decoded Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, s, decoded)
	assert.Contains(t, buf.String(), "deleted_parameters: 1")
	assert.NotContains(t, buf.String(), "dry_run")
}
