package core

import (
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Point is a widget position.
type Point struct {
	X, Y int
}

// Size is a widget extent.
type Size struct {
	W, H int
}

// WidgetProps is the property set shared by every category.
type WidgetProps struct {
	Label          Opt[string]
	Tooltip        Opt[string]
	Pos            Opt[Point]
	Size           Opt[Size]
	Subtype        Opt[int]
	Fixed          Opt[int]
	Color          Opt[style.Color]
	LabelColor     Opt[style.Color]
	SelectionColor Opt[style.Color]
	LabelSize      Opt[int]
	LabelFont      Opt[style.Font]
	LabelType      Opt[style.LabelType]
	Box            Opt[style.BoxType]
	Hidden         Opt[bool]
	Align          Opt[style.Align]
	Deactivated    Opt[bool]
	When           Opt[style.When]
}

// geometry resolves the declared position and size, absent parts being 0.
func (p *WidgetProps) geometry() toolkit.Rect {
	pos := p.Pos.Or(Point{})
	size := p.Size.Or(Size{})
	return toolkit.Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}

// View applies every present field to a freshly created handle. Fixed is
// applied when the widget is attached to a flex parent.
func (p *WidgetProps) View(tk toolkit.Toolkit, h toolkit.Handle) {
	ApplyAttr(tk, h, toolkit.AttrLabel, p.Label)
	ApplyAttr(tk, h, toolkit.AttrTooltip, p.Tooltip)
	if p.Pos.IsSet() || p.Size.IsSet() {
		tk.SetGeometry(h, p.geometry())
	}
	ApplyAttr(tk, h, toolkit.AttrType, p.Subtype)
	ApplyAttr(tk, h, toolkit.AttrColor, p.Color)
	ApplyAttr(tk, h, toolkit.AttrSelectionColor, p.SelectionColor)
	ApplyAttr(tk, h, toolkit.AttrLabelColor, p.LabelColor)
	ApplyAttr(tk, h, toolkit.AttrLabelSize, p.LabelSize)
	ApplyAttr(tk, h, toolkit.AttrLabelFont, p.LabelFont)
	ApplyAttr(tk, h, toolkit.AttrLabelType, p.LabelType)
	ApplyAttr(tk, h, toolkit.AttrBox, p.Box)
	ApplyAttr(tk, h, toolkit.AttrHidden, p.Hidden)
	ApplyAttr(tk, h, toolkit.AttrDeactivated, p.Deactivated)
	ApplyAttr(tk, h, toolkit.AttrAlign, p.Align)
	ApplyAttr(tk, h, toolkit.AttrWhen, p.When)
}

// Update applies only the fields of next that differ from p, then stores
// them in p. Equal property sets make no toolkit calls.
func (p *WidgetProps) Update(tk toolkit.Toolkit, h toolkit.Handle, next WidgetProps) {
	if *p == next {
		return
	}
	PatchAttr(tk, h, toolkit.AttrLabel, &p.Label, next.Label)
	PatchAttr(tk, h, toolkit.AttrTooltip, &p.Tooltip, next.Tooltip)
	if p.Pos != next.Pos || p.Size != next.Size {
		p.Pos = next.Pos
		p.Size = next.Size
		tk.SetGeometry(h, p.geometry())
	}
	PatchAttr(tk, h, toolkit.AttrType, &p.Subtype, next.Subtype)
	p.Fixed = next.Fixed
	PatchAttr(tk, h, toolkit.AttrColor, &p.Color, next.Color)
	PatchAttr(tk, h, toolkit.AttrSelectionColor, &p.SelectionColor, next.SelectionColor)
	PatchAttr(tk, h, toolkit.AttrLabelColor, &p.LabelColor, next.LabelColor)
	PatchAttr(tk, h, toolkit.AttrLabelSize, &p.LabelSize, next.LabelSize)
	PatchAttr(tk, h, toolkit.AttrLabelFont, &p.LabelFont, next.LabelFont)
	PatchAttr(tk, h, toolkit.AttrLabelType, &p.LabelType, next.LabelType)
	PatchAttr(tk, h, toolkit.AttrBox, &p.Box, next.Box)
	PatchAttr(tk, h, toolkit.AttrHidden, &p.Hidden, next.Hidden)
	PatchAttr(tk, h, toolkit.AttrDeactivated, &p.Deactivated, next.Deactivated)
	PatchAttr(tk, h, toolkit.AttrAlign, &p.Align, next.Align)
	PatchAttr(tk, h, toolkit.AttrWhen, &p.When, next.When)
}

// ApplyAttr sets attr on h when v is present.
func ApplyAttr[T comparable](tk toolkit.Toolkit, h toolkit.Handle, attr toolkit.Attr, v Opt[T]) {
	if value, ok := v.Get(); ok {
		tk.SetAttr(h, attr, value)
	}
}

// PatchAttr moves *cur to next with exactly one SetAttr call when they
// differ and none otherwise. Becoming absent restores the class default.
func PatchAttr[T comparable](tk toolkit.Toolkit, h toolkit.Handle, attr toolkit.Attr, cur *Opt[T], next Opt[T]) {
	if *cur == next {
		return
	}
	*cur = next
	tk.SetAttr(h, attr, next.Any())
}
