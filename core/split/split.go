package split

import "strings"

// DefaultIFS is the field separator set used when IFS is unset.
const DefaultIFS = " \t\n"

// Splitter classifies lines into spans using a fixed IFS separator set.
type Splitter struct {
	ifs string
}

// NewSplitter returns a Splitter that treats every byte of ifs as a
// field delimiter. An empty ifs disables splitting entirely.
func NewSplitter(ifs string) *Splitter {
	return &Splitter{ifs: ifs}
}

func (sp *Splitter) isDelim(c byte) bool {
	return strings.IndexByte(sp.ifs, c) >= 0
}

// isIFSWhitespace reports whether c is an IFS byte that follows the
// POSIX whitespace rules: runs collapse and leading/trailing runs bind
// to no field. Non-whitespace IFS bytes each terminate a field.
func (sp *Splitter) isIFSWhitespace(c byte) bool {
	return sp.isDelim(c) && (c == ' ' || c == '\t' || c == '\n')
}

// Split classifies line into an ordered, contiguous sequence of spans.
//
// With allowEscape set (read without -r) a backslash is an Escape span
// and the byte after it is always Content, even if it is an IFS byte.
// A backslash that ends the line is a bare Escape span; callers treat
// it as a line continuation.
//
// Adjacent non-whitespace delimiters produce a zero-length Content
// span between them so that empty fields survive assembly. A trailing
// run of IFS whitespace produces no span at all.
func (sp *Splitter) Split(line string, allowEscape bool) []Span {
	var spans []Span
	n := len(line)

	// hasField records whether a Content span was emitted since the
	// start of the line or the last non-whitespace delimiter. A
	// non-whitespace delimiter seen while it is false terminates an
	// empty field.
	hasField := false

	i := 0
	for i < n {
		c := line[i]
		switch {
		case allowEscape && c == '\\':
			spans = append(spans, Span{Escape, i + 1})
			i++
			if i < n {
				// The escaped byte starts (or extends) a field no
				// matter what it is.
				j := sp.contentEnd(line, i+1, allowEscape)
				spans = append(spans, Span{Content, j})
				hasField = true
				i = j
			}

		case sp.isIFSWhitespace(c):
			j := i
			for j < n && sp.isIFSWhitespace(line[j]) {
				j++
			}
			if j == n {
				// Trailing whitespace binds to no field.
				return spans
			}
			spans = append(spans, Span{Delimiter, j})
			i = j

		case sp.isDelim(c):
			if !hasField {
				spans = append(spans, Span{Content, i})
			}
			spans = append(spans, Span{Delimiter, i + 1})
			hasField = false
			i++

		default:
			j := sp.contentEnd(line, i+1, allowEscape)
			spans = append(spans, Span{Content, j})
			hasField = true
			i = j
		}
	}

	return spans
}

// contentEnd scans forward from start for the end of a run of ordinary
// content bytes.
func (sp *Splitter) contentEnd(line string, start int, allowEscape bool) int {
	j := start
	for j < len(line) && !sp.isDelim(line[j]) && !(allowEscape && line[j] == '\\') {
		j++
	}
	return j
}
