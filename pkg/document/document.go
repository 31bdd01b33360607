package document

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when content is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// Document is a text file held in memory as an ordered sequence of lines.
// Lines never contain '\n'; a '\r' from CRLF input stays attached to its line.
type Document struct {
	Lines []string
}

// Parse validates content as UTF-8 and splits it on '\n'.
// Joining the result again reproduces content byte-for-byte.
func Parse(content []byte) (*Document, error) {
	if !utf8.Valid(content) {
		return nil, ErrInvalidEncoding
	}
	return &Document{Lines: strings.Split(string(content), "\n")}, nil
}

// Len returns the number of lines in the document.
func (d *Document) Len() int {
	return len(d.Lines)
}

// String joins the lines back together with '\n'.
func (d *Document) String() string {
	return strings.Join(d.Lines, "\n")
}

// Bytes is String as a byte slice, ready to be written out.
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

// Count returns the number of non-overlapping occurrences of substr in the whole document.
func (d *Document) Count(substr string) int {
	if substr == "" {
		return 0
	}
	n := 0
	for _, line := range d.Lines {
		n += strings.Count(line, substr)
	}
	return n
}
