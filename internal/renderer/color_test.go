package renderer

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", ColorRed, false},
		{"00ff00", ColorGreen, false},
		{"#fff", ColorWhite, false},
		{"#28282d", Color{R: 0x28, G: 0x28, B: 0x2d}, false},
		{"#12345", Color{}, true},
		{"#zzzzzz", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ColorFromHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ColorFromHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && !got.Equals(tt.want) {
			t.Errorf("ColorFromHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := ColorFromRGB(0x12, 0xab, 0xef)
	got, err := ColorFromHex(c.Hex())
	if err != nil {
		t.Fatalf("ColorFromHex(%q): %v", c.Hex(), err)
	}
	if !got.Equals(c) {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

// near tolerates the one-step rounding that Lab conversion introduces.
func near(a, b Color) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(a.R, b.R) <= 1 && diff(a.G, b.G) <= 1 && diff(a.B, b.B) <= 1
}

func TestColorBlendEndpoints(t *testing.T) {
	if got := ColorRed.Blend(ColorBlue, 0); !near(got, ColorRed) {
		t.Errorf("Blend(0) = %v, want unchanged", got)
	}
	if got := ColorRed.Blend(ColorBlue, 1); !near(got, ColorBlue) {
		t.Errorf("Blend(1) = %v, want the target", got)
	}
}

func TestColorBlendDefaultPassesThrough(t *testing.T) {
	if got := ColorDefault.Blend(ColorRed, 0.5); !got.IsDefault() {
		t.Errorf("blending from default = %v, want default", got)
	}
	if got := ColorRed.Blend(ColorDefault, 0.5); !got.Equals(ColorRed) {
		t.Errorf("blending toward default = %v, want unchanged", got)
	}
}

func TestLightenDarken(t *testing.T) {
	base := ColorFromRGB(100, 100, 100)

	lighter := base.Lighten(0.5)
	if lighter.R <= base.R {
		t.Errorf("Lighten = %v, want brighter than %v", lighter, base)
	}
	darker := base.Darken(0.5)
	if darker.R >= base.R {
		t.Errorf("Darken = %v, want darker than %v", darker, base)
	}
}
