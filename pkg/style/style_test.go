package style

import (
	"testing"

	"golang.org/x/image/font"
)

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGBColor
	}{
		{"#ff8000", RGBColor{255, 128, 0}},
		{"#FFF", RGBColor{255, 255, 255}},
		{"cornflowerblue", RGBColor{100, 149, 237}},
		{" Black ", RGBColor{0, 0, 0}},
	}
	for _, tt := range tests {
		got, err := ParseRGB(tt.in)
		if err != nil {
			t.Errorf("ParseRGB(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRGB(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRGB_Invalid(t *testing.T) {
	for _, in := range []string{"#12", "#zzzzzz", "notacolor"} {
		if _, err := ParseRGB(in); err == nil {
			t.Errorf("ParseRGB(%q) expected error", in)
		}
	}
}

func TestColorRGBRoundTrip(t *testing.T) {
	c := RGB(10, 20, 30)
	r, g, b, ok := c.RGB()
	if !ok || r != 10 || g != 20 || b != 30 {
		t.Errorf("RGB() = %d,%d,%d,%v", r, g, b, ok)
	}
	if _, _, _, ok := Red.RGB(); ok {
		t.Error("palette index should not unpack as RGB")
	}
}

func TestFontWeightAndStyle(t *testing.T) {
	if HelveticaBold.Weight() != font.WeightBold {
		t.Error("HelveticaBold should be bold")
	}
	if Courier.Weight() != font.WeightNormal {
		t.Error("Courier should be normal weight")
	}
	if TimesBoldItalic.Style() != font.StyleItalic {
		t.Error("TimesBoldItalic should be italic")
	}
}

func TestSchemeValid(t *testing.T) {
	if !SchemeGtk.Valid() || Scheme("metal").Valid() {
		t.Error("unexpected scheme validity")
	}
}
