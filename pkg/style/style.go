// Package style holds the enumerated appearance values understood by the
// native toolkit: colors, fonts, alignment, callback masks, box and label
// types, shortcuts, menu flags and schemes. All types are plain values.
package style

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
)

// Color is a toolkit color: either a palette index (< 256) or a packed
// 0xRRGGBB00 value.
type Color uint32

// Predefined palette entries.
const (
	Foreground  Color = 0
	Background2 Color = 7
	Inactive    Color = 8
	Selection   Color = 15
	Gray0       Color = 32
	Dark3       Color = 39
	Dark2       Color = 45
	Dark1       Color = 47
	Background  Color = 49
	Light1      Color = 50
	Light2      Color = 52
	Light3      Color = 54
	Black       Color = 56
	Red         Color = 88
	Green       Color = 63
	Yellow      Color = 95
	Blue        Color = 216
	Magenta     Color = 248
	Cyan        Color = 223
	DarkRed     Color = 72
	DarkGreen   Color = 60
	DarkYellow  Color = 76
	DarkBlue    Color = 136
	DarkMagenta Color = 152
	DarkCyan    Color = 140
	White       Color = 255
)

// RGB packs an explicit color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8)
}

// IsRGB reports whether c is a packed color rather than a palette index.
func (c Color) IsRGB() bool {
	return c > 255
}

// RGB unpacks a packed color. Palette indices return ok=false.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	if !c.IsRGB() {
		return 0, 0, 0, false
	}
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), true
}

// RGBColor is an explicit red/green/blue triple as used by application
// settings. It accepts "#rrggbb" or a CSS color name when decoded from text.
type RGBColor struct {
	R, G, B uint8
}

// Color converts the triple into a packed toolkit color.
func (c RGBColor) Color() Color {
	return RGB(c.R, c.G, c.B)
}

// ParseRGB parses "#rrggbb", "#rgb" or a CSS/SVG color name.
func ParseRGB(s string) (RGBColor, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		var r, g, b uint8
		if len(hex) != 6 {
			return RGBColor{}, fmt.Errorf("style: invalid color %q", s)
		}
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return RGBColor{}, fmt.Errorf("style: invalid color %q: %w", s, err)
		}
		return RGBColor{r, g, b}, nil
	}
	named, ok := colornames.Map[s]
	if !ok {
		return RGBColor{}, fmt.Errorf("style: unknown color name %q", s)
	}
	return fromRGBA(named), nil
}

func fromRGBA(c color.RGBA) RGBColor {
	return RGBColor{R: c.R, G: c.G, B: c.B}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGBColor) UnmarshalText(text []byte) error {
	parsed, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c RGBColor) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
}

// Font is a toolkit font index.
type Font int

const (
	Helvetica Font = iota
	HelveticaBold
	HelveticaItalic
	HelveticaBoldItalic
	Courier
	CourierBold
	CourierItalic
	CourierBoldItalic
	Times
	TimesBold
	TimesItalic
	TimesBoldItalic
	Symbol
	Screen
	ScreenBold
	Zapfdingbats
)

// Weight reports the weight implied by the font index for the built-in
// faces. Fonts past Zapfdingbats are user-registered and report normal.
func (f Font) Weight() font.Weight {
	switch f {
	case HelveticaBold, HelveticaBoldItalic, CourierBold, CourierBoldItalic,
		TimesBold, TimesBoldItalic, ScreenBold:
		return font.WeightBold
	}
	return font.WeightNormal
}

// Style reports whether the built-in face is italic.
func (f Font) Style() font.Style {
	switch f {
	case HelveticaItalic, HelveticaBoldItalic, CourierItalic, CourierBoldItalic,
		TimesItalic, TimesBoldItalic:
		return font.StyleItalic
	}
	return font.StyleNormal
}

// When is the callback trigger mask.
type When int

const (
	WhenNever           When = 0
	WhenChanged         When = 1
	WhenNotChanged      When = 2
	WhenRelease         When = 4
	WhenReleaseAlways   When = 6
	WhenEnterKey        When = 8
	WhenEnterKeyAlways  When = 10
	WhenEnterKeyChanged When = 11
)

// Align is a label alignment bit set.
type Align int

const (
	AlignCenter          Align = 0
	AlignTop             Align = 1
	AlignBottom          Align = 2
	AlignLeft            Align = 4
	AlignRight           Align = 8
	AlignInside          Align = 16
	AlignTextOverImage   Align = 20
	AlignClip            Align = 40
	AlignWrap            Align = 80
	AlignImageNextToText Align = 100
	AlignTextNextToImage Align = 120
	AlignImageBackdrop   Align = 200
	AlignTopLeft         Align = AlignTop | AlignLeft
	AlignTopRight        Align = AlignTop | AlignRight
	AlignBottomLeft      Align = AlignBottom | AlignLeft
	AlignBottomRight     Align = AlignBottom | AlignRight
	AlignLeftTop         Align = 7
	AlignRightTop        Align = 11
	AlignLeftBottom      Align = 13
	AlignRightBottom     Align = 14
	AlignPositionMask    Align = 15
	AlignImageMask       Align = 320
)

// Shortcut is a key code optionally or'ed with modifier bits.
type Shortcut int

const (
	ShortcutNone Shortcut = 0
	Shift        Shortcut = 0x00010000
	CapsLock     Shortcut = 0x00020000
	Ctrl         Shortcut = 0x00040000
	Alt          Shortcut = 0x00080000
)

// Key returns a shortcut for a printable key with modifiers.
func Key(r rune, mods ...Shortcut) Shortcut {
	s := Shortcut(r)
	for _, m := range mods {
		s |= m
	}
	return s
}

// MenuFlag is a menu item flag bit set.
type MenuFlag int

const (
	MenuNormal         MenuFlag = 0
	MenuInactive       MenuFlag = 1
	MenuToggle         MenuFlag = 2
	MenuValue          MenuFlag = 4
	MenuRadio          MenuFlag = 8
	MenuInvisible      MenuFlag = 0x10
	MenuSubmenuPointer MenuFlag = 0x20
	MenuSubmenu        MenuFlag = 0x40
	MenuDivider        MenuFlag = 0x80
	MenuHorizontal     MenuFlag = 0x100
)

// LabelType selects how labels are drawn.
type LabelType int

const (
	LabelNormal LabelType = iota
	LabelNone
	LabelShadow
	LabelEngraved
	LabelEmbossed
	LabelMulti
	LabelIcon
	LabelImage
	LabelFree
)

// BoxType selects the frame drawn around a widget.
type BoxType int

const (
	NoBox BoxType = iota
	FlatBox
	UpBox
	DownBox
	UpFrame
	DownFrame
	ThinUpBox
	ThinDownBox
	ThinUpFrame
	ThinDownFrame
	EngravedBox
	EmbossedBox
	EngravedFrame
	EmbossedFrame
	BorderBox
	ShadowBox
	BorderFrame
	ShadowFrame
	RoundedBox
	RShadowBox
	RoundedFrame
	RFlatBox
	RoundUpBox
	RoundDownBox
	DiamondUpBox
	DiamondDownBox
	OvalBox
	OShadowBox
	OvalFrame
	OFlatBox
	PlasticUpBox
	PlasticDownBox
	PlasticUpFrame
	PlasticDownFrame
	PlasticThinUpBox
	PlasticThinDownBox
	PlasticRoundUpBox
	PlasticRoundDownBox
	GtkUpBox
	GtkDownBox
	GtkUpFrame
	GtkDownFrame
	GtkThinUpBox
	GtkThinDownBox
	GtkThinUpFrame
	GtkThinDownFrame
	GtkRoundUpFrame
	GtkRoundDownFrame
	GleamUpBox
	GleamDownBox
	GleamUpFrame
	GleamDownFrame
	GleamThinUpBox
	GleamThinDownBox
	GleamRoundUpBox
	GleamRoundDownBox
	FreeBoxType
)

// Scheme names a toolkit drawing scheme.
type Scheme string

const (
	SchemeBase    Scheme = "base"
	SchemeOxy     Scheme = "oxy"
	SchemeGtk     Scheme = "gtk+"
	SchemeGleam   Scheme = "gleam"
	SchemePlastic Scheme = "plastic"
)

// Valid reports whether s is one of the predefined schemes.
func (s Scheme) Valid() bool {
	switch s {
	case SchemeBase, SchemeOxy, SchemeGtk, SchemeGleam, SchemePlastic:
		return true
	}
	return false
}
