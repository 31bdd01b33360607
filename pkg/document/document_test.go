package document

import (
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLines int
	}{
		{name: "empty", content: "", wantLines: 1},
		{name: "no trailing newline", content: "a\nb", wantLines: 2},
		{name: "trailing newline", content: "a\nb\n", wantLines: 3},
		{name: "crlf", content: "a\r\nb\r\n", wantLines: 3},
		{name: "bom and cjk", content: "\ufeffusing System;\n// 文本题目描述\n", wantLines: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.content))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if doc.Len() != tt.wantLines {
				t.Errorf("Len() = %d, want %d", doc.Len(), tt.wantLines)
			}
			if got := string(doc.Bytes()); got != tt.content {
				t.Errorf("round trip = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	_, err := Parse([]byte{'a', 0xff, 0xfe, '\n'})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Parse() error = %v, want ErrInvalidEncoding", err)
	}
}

func TestCount(t *testing.T) {
	doc := &Document{Lines: []string{"文本题目描述 文本题目描述", "none", "文本题目描述"}}
	if got := doc.Count("文本题目描述"); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := doc.Count(""); got != 0 {
		t.Errorf("Count(\"\") = %d, want 0", got)
	}
}
