package highlight

import "github.com/dshills/vigor/internal/renderer"

// Span is a byte range [Start, End) of a line tagged with a style.
type Span struct {
	Start int
	End   int
	Style renderer.Style
}

// Contains reports whether a byte offset falls inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// Resolver produces styled spans for a single line of text.
// Spans are ordered by start offset; ranges may overlap, in which case
// the first span containing a position wins.
type Resolver interface {
	HighlightLine(line string) []Span
}

// StyleAt returns the style of the first span containing the byte offset,
// or fallback when no span matches. Overlapping spans are not merged.
func StyleAt(spans []Span, pos int, fallback renderer.Style) renderer.Style {
	for _, s := range spans {
		if s.Contains(pos) {
			return s.Style
		}
	}
	return fallback
}
