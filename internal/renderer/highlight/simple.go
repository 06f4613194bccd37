package highlight

import (
	"regexp"
	"sort"
)

// Rule defines a highlighting rule: regex matches become spans of the
// rule's token type.
type Rule struct {
	Pattern   *regexp.Regexp
	TokenType TokenType
}

// Simple is a regex-based line resolver. It has no cross-line state, so a
// construct spanning lines (a raw string, a block comment) only styles the
// line it starts on.
type Simple struct {
	language string
	theme    *Theme
	rules    []Rule
	keywords map[string]TokenType
}

// identPattern matches candidate keyword identifiers.
var identPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// NewSimple creates a resolver that styles nothing until rules are added.
func NewSimple(language string, theme *Theme) *Simple {
	return &Simple{
		language: language,
		theme:    theme,
		keywords: make(map[string]TokenType),
	}
}

// Language returns the language name.
func (h *Simple) Language() string {
	return h.language
}

// AddRule adds a regex rule. Rules added earlier win over later ones when
// spans overlap, since span lookup is first-match.
func (h *Simple) AddRule(pattern string, tokenType TokenType) *Simple {
	h.rules = append(h.rules, Rule{
		Pattern:   regexp.MustCompile(pattern),
		TokenType: tokenType,
	})
	return h
}

// AddKeywords registers identifiers to style with the given token type.
func (h *Simple) AddKeywords(tokenType TokenType, keywords ...string) *Simple {
	for _, kw := range keywords {
		h.keywords[kw] = tokenType
	}
	return h
}

// HighlightLine produces styled spans for one line, ordered by start
// offset. Offsets are byte positions within the line.
func (h *Simple) HighlightLine(line string) []Span {
	var spans []Span

	for _, rule := range h.rules {
		style := h.theme.StyleForToken(rule.TokenType)
		for _, m := range rule.Pattern.FindAllStringIndex(line, -1) {
			spans = append(spans, Span{Start: m[0], End: m[1], Style: style})
		}
	}

	for _, m := range identPattern.FindAllStringIndex(line, -1) {
		tokenType, ok := h.keywords[line[m[0]:m[1]]]
		if !ok {
			continue
		}
		spans = append(spans, Span{Start: m[0], End: m[1], Style: h.theme.StyleForToken(tokenType)})
	}

	// Stable: rule order decides ties, and first-match lookup then sees
	// earlier rules first among spans starting at the same offset.
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	return spans
}

// Go returns a resolver preconfigured for Go source.
func Go(theme *Theme) *Simple {
	h := NewSimple("go", theme)

	h.AddRule(`//.*$`, TokenComment)
	h.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	h.AddRule("`[^`]*`?", TokenString)
	h.AddRule(`'(?:[^'\\]|\\.)*'`, TokenString)
	h.AddRule(`\b0[xX][0-9a-fA-F_]+\b|\b\d[\d_]*(?:\.\d+)?\b`, TokenNumber)

	h.AddKeywords(TokenKeyword,
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var")
	h.AddKeywords(TokenTypeName,
		"any", "bool", "byte", "complex64", "complex128", "error", "float32",
		"float64", "int", "int8", "int16", "int32", "int64", "rune", "string",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr")
	h.AddKeywords(TokenConstant, "true", "false", "iota", "nil")
	h.AddKeywords(TokenFunction,
		"append", "cap", "clear", "close", "copy", "delete", "len", "make",
		"max", "min", "new", "panic", "print", "println", "recover")

	return h
}

// ForPath returns a resolver for a file path based on its extension, or
// nil when the file type has no highlighter. A nil resolver renders
// everything in the theme's base style.
func ForPath(path string, theme *Theme) Resolver {
	if len(path) > 3 && path[len(path)-3:] == ".go" {
		return Go(theme)
	}
	return nil
}
