// Package split classifies a line of input into spans and folds those
// spans into fields the way POSIX shells split input for the read
// builtin: IFS delimiters separate fields, except a backslash can
// escape them and a trailing backslash continues the line.
package split

// Kind classifies one span of a line. It is a closed set; code that
// switches over it handles every value.
type Kind int

const (
	// Content is text that belongs to a field.
	Content Kind = iota
	// Delimiter is a run of field-separator text.
	Delimiter
	// Escape is a backslash that removes the special meaning of the
	// byte after it, or continues the line when it is the final byte.
	Escape
)

func (k Kind) String() string {
	switch k {
	case Content:
		return "content"
	case Delimiter:
		return "delimiter"
	case Escape:
		return "escape"
	default:
		return "unknown"
	}
}

// Span is a classified sub-range of one line. Spans are produced in
// order and are contiguous: each span covers the bytes from the
// previous span's End (or 0) up to its own End.
type Span struct {
	Kind Kind
	// End is the exclusive end offset of the span in the source line.
	End int
}
