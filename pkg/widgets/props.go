package widgets

import (
	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/style"
)

// Prop sets one common property on a descriptor copy.
type Prop func(*core.WidgetProps)

// Label sets the widget label.
func Label(s string) Prop {
	return func(p *core.WidgetProps) { p.Label = core.Some(s) }
}

// Tooltip sets the hover text.
func Tooltip(s string) Prop {
	return func(p *core.WidgetProps) { p.Tooltip = core.Some(s) }
}

// At sets the widget position.
func At(x, y int) Prop {
	return func(p *core.WidgetProps) { p.Pos = core.Some(core.Point{X: x, Y: y}) }
}

// Sized sets the widget size.
func Sized(w, h int) Prop {
	return func(p *core.WidgetProps) { p.Size = core.Some(core.Size{W: w, H: h}) }
}

// Subtype sets the native type value.
func Subtype(t int) Prop {
	return func(p *core.WidgetProps) { p.Subtype = core.Some(t) }
}

// Fixed pins the widget's size along its flex parent's main axis. It has no
// effect outside a flex.
func Fixed(size int) Prop {
	return func(p *core.WidgetProps) { p.Fixed = core.Some(size) }
}

// Color sets the background color.
func Color(c style.Color) Prop {
	return func(p *core.WidgetProps) { p.Color = core.Some(c) }
}

// LabelColor sets the label color.
func LabelColor(c style.Color) Prop {
	return func(p *core.WidgetProps) { p.LabelColor = core.Some(c) }
}

// SelectionColor sets the selection color.
func SelectionColor(c style.Color) Prop {
	return func(p *core.WidgetProps) { p.SelectionColor = core.Some(c) }
}

// LabelSize sets the label font size.
func LabelSize(n int) Prop {
	return func(p *core.WidgetProps) { p.LabelSize = core.Some(n) }
}

// LabelFont sets the label font.
func LabelFont(f style.Font) Prop {
	return func(p *core.WidgetProps) { p.LabelFont = core.Some(f) }
}

// LabelType sets how the label is drawn.
func LabelType(t style.LabelType) Prop {
	return func(p *core.WidgetProps) { p.LabelType = core.Some(t) }
}

// Frame sets the box type drawn around the widget.
func Frame(b style.BoxType) Prop {
	return func(p *core.WidgetProps) { p.Box = core.Some(b) }
}

// Hidden hides the widget when true.
func Hidden(v bool) Prop {
	return func(p *core.WidgetProps) { p.Hidden = core.Some(v) }
}

// Align sets the label alignment.
func Align(a style.Align) Prop {
	return func(p *core.WidgetProps) { p.Align = core.Some(a) }
}

// Deactivated greys the widget out when true.
func Deactivated(v bool) Prop {
	return func(p *core.WidgetProps) { p.Deactivated = core.Some(v) }
}

// When sets the callback trigger mask.
func When(w style.When) Prop {
	return func(p *core.WidgetProps) { p.When = core.Some(w) }
}

// with returns a fresh copy of w with props applied.
func with[W core.Widget](w W, props []Prop) W {
	c := w.Create().(W)
	for _, p := range props {
		p(c.Common())
	}
	return c
}

// labelled returns the common properties for a constructor label.
func labelled(label string) core.WidgetProps {
	var p core.WidgetProps
	if label != "" {
		p.Label = core.Some(label)
	}
	return p
}
