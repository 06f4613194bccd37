package highlight

import (
	"testing"

	"github.com/dshills/vigor/internal/renderer"
)

func TestStyleAtFirstMatchWins(t *testing.T) {
	a := renderer.NewStyle(renderer.ColorRed)
	b := renderer.NewStyle(renderer.ColorBlue)
	spans := []Span{
		{Start: 0, End: 5, Style: a},
		{Start: 3, End: 8, Style: b},
	}
	fallback := renderer.DefaultStyle()

	if got := StyleAt(spans, 4, fallback); !got.Equals(a) {
		t.Error("overlap should resolve to the first span")
	}
	if got := StyleAt(spans, 6, fallback); !got.Equals(b) {
		t.Error("expected second span past the first's end")
	}
	if got := StyleAt(spans, 9, fallback); !got.Equals(fallback) {
		t.Error("expected fallback outside all spans")
	}
}

func TestGoHighlighterKeywords(t *testing.T) {
	theme := DefaultTheme()
	h := Go(theme)

	spans := h.HighlightLine("func main() {")

	want := theme.StyleForToken(TokenKeyword)
	found := false
	for _, s := range spans {
		if s.Start == 0 && s.End == 4 && s.Style.Equals(want) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected keyword span for func, got %+v", spans)
	}
}

func TestGoHighlighterCommentCoversTrailing(t *testing.T) {
	theme := DefaultTheme()
	h := Go(theme)

	line := `x := 1 // if works`
	spans := h.HighlightLine(line)

	commentStart := 7
	want := theme.StyleForToken(TokenComment)
	got := StyleAt(spans, commentStart+4, theme.BaseStyle())
	if !got.Equals(want) {
		t.Error("keyword inside a comment should still render as comment")
	}
}

func TestGoHighlighterString(t *testing.T) {
	theme := DefaultTheme()
	h := Go(theme)

	spans := h.HighlightLine(`s := "hello \"q\" world"`)

	want := theme.StyleForToken(TokenString)
	got := StyleAt(spans, 10, theme.BaseStyle())
	if !got.Equals(want) {
		t.Errorf("expected string style inside quoted literal, got %+v", got)
	}
}

func TestHighlightLineOrdered(t *testing.T) {
	h := Go(DefaultTheme())

	spans := h.HighlightLine(`return fmt.Errorf("x %d", 42)`)
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].Start {
			t.Fatalf("spans out of order: %+v", spans)
		}
	}
}

func TestStyleForTokenFallback(t *testing.T) {
	theme := DefaultTheme()

	got := theme.StyleForToken(TokenOperator)
	if !got.Foreground.Equals(theme.Foreground) {
		t.Error("unmapped token should fall back to theme foreground")
	}
}

func TestParseTheme(t *testing.T) {
	data := []byte(`
name: custom
foreground: "#ffffff"
background: "#000000"
tokens:
  keyword:
    fg: "#ff0000"
    bold: true
  bogus:
    fg: "#00ff00"
`)

	theme, err := parseTheme("test", data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if theme.Name != "custom" {
		t.Errorf("expected name custom, got %q", theme.Name)
	}
	if !theme.Foreground.Equals(renderer.ColorWhite) {
		t.Errorf("expected white foreground, got %+v", theme.Foreground)
	}

	kw := theme.TokenStyles[TokenKeyword]
	if !kw.Foreground.Equals(renderer.ColorRed) || !kw.Attributes.Has(renderer.AttrBold) {
		t.Errorf("keyword style not applied: %+v", kw)
	}
}

func TestParseThemeBadColor(t *testing.T) {
	if _, err := parseTheme("test", []byte(`foreground: "nope"`)); err == nil {
		t.Error("expected error for invalid color")
	}
}

func TestForPath(t *testing.T) {
	theme := DefaultTheme()

	if ForPath("main.go", theme) == nil {
		t.Error("expected a resolver for .go files")
	}
	if ForPath("notes.txt", theme) != nil {
		t.Error("expected no resolver for plain text")
	}
}
