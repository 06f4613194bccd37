package highlight

// LineCache memoizes per-line spans across frames. Entries are keyed by
// row and validated against the buffer identity and revision, so frames
// between edits reuse every line and an edit only re-tokenizes rows
// whose text actually changed.
//
// A LineCache assumes exclusive sequential ownership, like the buffer
// it shadows.
type LineCache struct {
	resolver Resolver
	lines    map[int]lineEntry
}

type lineEntry struct {
	buffer   string
	revision uint64
	line     string
	spans    []Span
}

// NewLineCache wraps a resolver with per-line memoization.
func NewLineCache(resolver Resolver) *LineCache {
	return &LineCache{
		resolver: resolver,
		lines:    make(map[int]lineEntry),
	}
}

// HighlightLine returns the spans for one buffer row. buffer and
// revision identify the content the caller read line from; a cached
// entry with the same identity and revision is returned without
// touching the resolver. When only the revision moved, the line text
// decides whether re-tokenizing is needed.
func (c *LineCache) HighlightLine(buffer string, row int, revision uint64, line string) []Span {
	entry, ok := c.lines[row]
	if ok && entry.buffer == buffer && entry.revision == revision {
		return entry.spans
	}
	if ok && entry.buffer == buffer && entry.line == line {
		entry.revision = revision
		c.lines[row] = entry
		return entry.spans
	}

	spans := c.resolver.HighlightLine(line)
	c.lines[row] = lineEntry{buffer: buffer, revision: revision, line: line, spans: spans}
	return spans
}
