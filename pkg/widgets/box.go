package widgets

import (
	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Box is a widget with only the common properties: a label in a frame.
type Box struct {
	core.Base
}

// BoxOf returns a box showing label.
func BoxOf(label string) *Box {
	b := &Box{Base: core.NewBase(toolkit.ClassBox)}
	*b.Common() = labelled(label)
	return b
}

// CustomOf wraps a custom native class that needs only the common
// properties. The class must be registered with the toolkit.
func CustomOf(class toolkit.Class) *Box {
	return &Box{Base: core.NewBase(class)}
}

// With returns a copy of the box with props applied.
func (b *Box) With(props ...Prop) *Box {
	return with(b, props)
}

func (b *Box) Create() core.Widget {
	c := *b
	c.Base = b.Base.Fresh()
	return &c
}

func (b *Box) View(tk toolkit.Toolkit) toolkit.Handle {
	return b.Realize(tk)
}

func (b *Box) Update(next core.Widget) {
	n := core.PatchTarget[*Box]("Box.Update", b, next)
	b.Patch(&n.Base)
}

func (b *Box) Destroy() {
	b.Release()
}
