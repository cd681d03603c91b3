package split

// Assemble folds one line's spans into parts, the completed fields of
// a read invocation. It is called once per physical line; parts and
// joinNext carry over between calls when a line continues.
//
// maxResults caps the number of parts; zero means unbounded. Once the
// cap is reached every later span of the line is folded into the final
// part, separators included.
//
// joinNext means the next span's text extends the last part instead of
// starting a new one. It is armed by an escape that follows content
// and by the overflow cap.
//
// done is false when the line's final span is an Escape: the caller
// must read another physical line and call Assemble again with the
// returned joinNext and the same parts.
func Assemble(line string, spans []Span, maxResults int, joinNext bool, parts *[]string) (done, joinNextOut bool) {
	start := 0
	lastWasContent := false

	for _, span := range spans {
		text := line[start:span.End]

		switch span.Kind {
		case Content:
			if joinNext && len(*parts) > 0 {
				(*parts)[len(*parts)-1] += text
				joinNext = false
			} else {
				*parts = append(*parts, text)
			}
			lastWasContent = true

		case Delimiter:
			if joinNext && len(*parts) > 0 {
				(*parts)[len(*parts)-1] += text
				joinNext = false
			}
			lastWasContent = false

		case Escape:
			// The escape contributes no text. If it follows content,
			// whatever comes next glues onto that field rather than
			// starting a new one after a separator.
			if lastWasContent {
				joinNext = true
			}
			lastWasContent = false
		}

		if maxResults != 0 && len(*parts) >= maxResults {
			joinNext = true
		}

		start = span.End
	}

	done = true
	if len(spans) > 0 && spans[len(spans)-1].Kind == Escape {
		done = false
	}
	return done, joinNext
}
