package highlight

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/vigor/internal/renderer"
)

// Theme defines the editor's colors: base text, chrome (gutter, status
// line, command overlay), mode-dependent cursor colors and per-token
// syntax styles.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Foreground is the default text color.
	Foreground renderer.Color

	// Background is the editor background color.
	Background renderer.Color

	// GutterForeground colors inactive line numbers.
	GutterForeground renderer.Color

	// GutterActive colors the line number of the cursor's line.
	GutterActive renderer.Color

	// LineHighlight tints the cursor's line. Derived from Background
	// when not set explicitly.
	LineHighlight renderer.Color

	// Cursor cell backgrounds per mode.
	CursorNormal  renderer.Color
	CursorInsert  renderer.Color
	CursorCommand renderer.Color

	// Status line backgrounds per mode.
	StatusNormal  renderer.Color
	StatusInsert  renderer.Color
	StatusCommand renderer.Color

	// OverlayBackground fills the command overlay row.
	OverlayBackground renderer.Color

	// TokenStyles maps token types to their styles.
	TokenStyles map[TokenType]renderer.Style
}

// StyleForToken returns the style for a given token type, falling back to
// the theme's base style for unmapped types. Rendering never fails on an
// unresolved scope.
func (t *Theme) StyleForToken(tokenType TokenType) renderer.Style {
	if style, ok := t.TokenStyles[tokenType]; ok {
		return style
	}
	return renderer.NewStyle(t.Foreground)
}

// BaseStyle returns the default text style for buffer content.
func (t *Theme) BaseStyle() renderer.Style {
	return renderer.NewStyle(t.Foreground).WithBackground(t.Background)
}

// CursorColor returns the cursor cell background for a mode name.
func (t *Theme) CursorColor(mode string) renderer.Color {
	switch mode {
	case "insert":
		return t.CursorInsert
	case "command":
		return t.CursorCommand
	default:
		return t.CursorNormal
	}
}

// StatusColor returns the status line background for a mode name.
func (t *Theme) StatusColor(mode string) renderer.Color {
	switch mode {
	case "insert":
		return t.StatusInsert
	case "command":
		return t.StatusCommand
	default:
		return t.StatusNormal
	}
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	fg := renderer.ColorFromRGB(220, 220, 220)
	bg := renderer.ColorFromRGB(40, 42, 54)

	return &Theme{
		Name:             "default",
		Foreground:       fg,
		Background:       bg,
		GutterForeground: renderer.ColorFromRGB(150, 150, 150),
		GutterActive:     renderer.ColorFromRGB(241, 250, 140),
		// Derived chrome colors keep the theme coherent when only the
		// base colors are customized.
		LineHighlight:     bg.Lighten(0.06),
		CursorNormal:      renderer.ColorWhite,
		CursorInsert:      renderer.ColorFromRGB(80, 250, 123),
		CursorCommand:     renderer.ColorFromRGB(241, 250, 140),
		StatusNormal:      renderer.ColorFromRGB(80, 250, 123).Darken(0.35),
		StatusInsert:      renderer.ColorFromRGB(255, 85, 85).Darken(0.2),
		StatusCommand:     renderer.ColorFromRGB(241, 250, 140).Darken(0.35),
		OverlayBackground: renderer.ColorFromRGB(33, 34, 44),
		TokenStyles: map[TokenType]renderer.Style{
			TokenComment:  renderer.NewStyle(renderer.ColorFromRGB(92, 99, 112)).Italic(),
			TokenString:   renderer.NewStyle(renderer.ColorFromRGB(152, 195, 121)),
			TokenNumber:   renderer.NewStyle(renderer.ColorFromRGB(209, 154, 102)),
			TokenKeyword:  renderer.NewStyle(renderer.ColorFromRGB(204, 120, 50)).Bold(),
			TokenTypeName: renderer.NewStyle(renderer.ColorFromRGB(86, 182, 194)),
			TokenFunction: renderer.NewStyle(renderer.ColorFromRGB(66, 135, 245)).Bold(),
			TokenConstant: renderer.NewStyle(renderer.ColorFromRGB(229, 192, 123)),
		},
	}
}

// themeFile is the on-disk YAML form of a theme.
type themeFile struct {
	Name       string               `yaml:"name"`
	Foreground string               `yaml:"foreground"`
	Background string               `yaml:"background"`
	Gutter     string               `yaml:"gutter"`
	Tokens     map[string]tokenFile `yaml:"tokens"`
}

type tokenFile struct {
	Fg     string `yaml:"fg"`
	Bg     string `yaml:"bg"`
	Bold   bool   `yaml:"bold"`
	Italic bool   `yaml:"italic"`
}

// LoadTheme reads a YAML theme file and overlays it on the default theme,
// so partial files stay usable.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}
	return parseTheme(path, data)
}

func parseTheme(source string, data []byte) (*Theme, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", source, err)
	}

	theme := DefaultTheme()
	if tf.Name != "" {
		theme.Name = tf.Name
	}
	if tf.Foreground != "" {
		c, err := renderer.ColorFromHex(tf.Foreground)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", source, err)
		}
		theme.Foreground = c
	}
	if tf.Background != "" {
		c, err := renderer.ColorFromHex(tf.Background)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", source, err)
		}
		theme.Background = c
		theme.LineHighlight = c.Lighten(0.06)
	}
	if tf.Gutter != "" {
		c, err := renderer.ColorFromHex(tf.Gutter)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", source, err)
		}
		theme.GutterForeground = c
	}

	for scope, tok := range tf.Tokens {
		tokenType := TokenTypeFromString(scope)
		if tokenType == TokenNone {
			// Unknown scopes are ignored rather than rejected.
			continue
		}
		style := renderer.NewStyle(theme.Foreground)
		if tok.Fg != "" {
			c, err := renderer.ColorFromHex(tok.Fg)
			if err != nil {
				return nil, fmt.Errorf("theme %s: token %s: %w", source, scope, err)
			}
			style = style.WithForeground(c)
		}
		if tok.Bg != "" {
			c, err := renderer.ColorFromHex(tok.Bg)
			if err != nil {
				return nil, fmt.Errorf("theme %s: token %s: %w", source, scope, err)
			}
			style = style.WithBackground(c)
		}
		if tok.Bold {
			style = style.Bold()
		}
		if tok.Italic {
			style = style.Italic()
		}
		theme.TokenStyles[tokenType] = style
	}

	return theme, nil
}
