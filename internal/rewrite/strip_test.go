package rewrite

import (
	"reflect"
	"testing"
)

var testRule = Rule{Marker: DescriptionMarker, Identifier: DescriptionIdentifier}

func TestStripTrailingCommaMarkers(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		want        []string
		wantDeleted int
	}{
		{
			name: "deletes marker line and strips preceding comma",
			lines: []string{
				"  {",
				`    Name = "x",`,
				`    Description = "文本题目描述 DisplayName",`,
				"  }",
			},
			want: []string{
				"  {",
				`    Name = "x"`,
				"  }",
			},
			wantDeleted: 1,
		},
		{
			name: "marker on first line has no predecessor",
			lines: []string{
				`new() { Name = "Description", DisplayName = "文本题目描述" }`,
				"]",
			},
			want:        []string{"]"},
			wantDeleted: 1,
		},
		{
			name: "predecessor without comma is left alone",
			lines: []string{
				"  [",
				`    DisplayName = "文本题目描述"`,
				"  ]",
			},
			want:        []string{"  [", "  ]"},
			wantDeleted: 1,
		},
		{
			name: "marker without identifier survives",
			lines: []string{
				"a,",
				`Description = "文本题目描述"`,
			},
			want:        []string{"a,", `Description = "文本题目描述"`},
			wantDeleted: 0,
		},
		{
			name: "identifier without marker survives",
			lines: []string{
				"a,",
				`DisplayName = "操作类型"`,
			},
			want:        []string{"a,", `DisplayName = "操作类型"`},
			wantDeleted: 0,
		},
		{
			name: "trailing whitespace after comma is kept",
			lines: []string{
				"Order = 3 },  \r",
				`DisplayName = "文本题目描述"`,
			},
			want:        []string{"Order = 3 }  \r"},
			wantDeleted: 1,
		},
		{
			name: "only one comma removed",
			lines: []string{
				"x,,",
				`DisplayName = "文本题目描述"`,
			},
			want:        []string{"x,"},
			wantDeleted: 1,
		},
		{
			name: "consecutive deletions only touch the surviving predecessor",
			lines: []string{
				"a,",
				"b,",
				`DisplayName = "文本题目描述" 1`,
				`DisplayName = "文本题目描述" 2`,
				"c",
			},
			want:        []string{"a,", "b", "c"},
			wantDeleted: 2,
		},
		{
			name:        "empty input",
			lines:       []string{},
			want:        []string{},
			wantDeleted: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, deleted := StripTrailingCommaMarkers(tt.lines, testRule)
			if deleted != tt.wantDeleted {
				t.Errorf("StripTrailingCommaMarkers() deleted = %d, want %d", deleted, tt.wantDeleted)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StripTrailingCommaMarkers() got = %q, want %q", got, tt.want)
			}
			if len(got) != len(tt.lines)-deleted {
				t.Errorf("line count %d != %d - %d", len(got), len(tt.lines), deleted)
			}
		})
	}
}

func TestStripTrailingCommaMarkers_DoesNotMutateInput(t *testing.T) {
	lines := []string{"a,", `DisplayName = "文本题目描述"`}
	_, _ = StripTrailingCommaMarkers(lines, testRule)
	if lines[0] != "a," {
		t.Errorf("input was modified: %q", lines[0])
	}
}

func TestStripTrailingComma(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"x,", "x", true},
		{"x, \t", "x \t", true},
		{"x", "x", false},
		{",x", ",x", false},
		{"", "", false},
		{"   ", "   ", false},
	}
	for _, tt := range tests {
		got, ok := stripTrailingComma(tt.line)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("stripTrailingComma(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}
