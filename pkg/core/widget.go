package core

import (
	"fmt"

	"github.com/go-drift/reflex/pkg/errors"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Widget describes one desired widget instance and owns its native handle
// once realized.
type Widget interface {
	// Kind is the category tag. Two descriptors with the same Kind at the
	// same tree position are the same node.
	Kind() toolkit.Class
	// Create returns a value copy of the descriptor.
	Create() Widget
	// View creates the native handle, applies every present property and,
	// for containers, realizes and attaches all children.
	View(tk toolkit.Toolkit) toolkit.Handle
	// Update patches the live handle toward next. next must have the same
	// Kind; the reconciler guarantees this before calling.
	Update(next Widget)
	// Destroy releases the native handle, descendants first. The handle
	// must already be detached from its parent.
	Destroy()
	// Handle returns the live handle, or 0 before View.
	Handle() toolkit.Handle
	// Common exposes the shared property set.
	Common() *WidgetProps
}

// Base is embedded by every category. It owns the common property set and
// the realized handle.
type Base struct {
	kind   toolkit.Class
	props  WidgetProps
	tk     toolkit.Toolkit
	handle toolkit.Handle

	parent toolkit.Handle
	inFlex bool
}

// NewBase returns a Base for the given category.
func NewBase(kind toolkit.Class) Base {
	return Base{kind: kind}
}

func (b *Base) Kind() toolkit.Class {
	return b.kind
}

func (b *Base) Handle() toolkit.Handle {
	return b.handle
}

func (b *Base) Common() *WidgetProps {
	return &b.props
}

// Toolkit returns the toolkit the handle lives on, or nil before View.
func (b *Base) Toolkit() toolkit.Toolkit {
	return b.tk
}

// Realize allocates the native handle with placeholder geometry and applies
// the common properties. A toolkit failure is fatal and panics with a
// KindToolkit error that the engine turns into the run's error.
func (b *Base) Realize(tk toolkit.Toolkit) toolkit.Handle {
	h, err := tk.Create(b.kind, toolkit.Rect{}, "")
	if err != nil {
		panic(errors.Toolkit("core.Realize("+string(b.kind)+")", 0, err))
	}
	b.tk = tk
	b.handle = h
	b.parent = 0
	b.inFlex = false
	b.props.View(tk, h)
	return h
}

// Patch diffs the common properties toward next.
func (b *Base) Patch(next *Base) {
	if b.props.Fixed != next.props.Fixed && b.inFlex {
		b.tk.SetFixed(b.parent, b.handle, next.props.Fixed.Or(0))
	}
	b.props.Update(b.tk, b.handle, next.props)
}

// Release destroys the native handle.
func (b *Base) Release() {
	if b.handle == 0 {
		return
	}
	b.tk.Destroy(b.handle)
	b.handle = 0
	b.parent = 0
	b.inFlex = false
}

// attached records the widget's container. A fixed size is applied only
// when that container is a flex.
func (b *Base) attached(parent toolkit.Handle, flex bool) {
	b.parent = parent
	b.inFlex = flex
	if v, ok := b.props.Fixed.Get(); ok && flex {
		b.tk.SetFixed(parent, b.handle, v)
	}
}

// Attach records that w's handle has been added to parent. Containers call
// it right after Add or Insert so parent-dependent properties take effect.
func Attach(w Widget, parent toolkit.Handle, flex bool) {
	if a, ok := w.(interface {
		attached(toolkit.Handle, bool)
	}); ok {
		a.attached(parent, flex)
	}
}

// SameKind reports whether a and b are the same node category.
func SameKind(a, b Widget) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Kind() == b.Kind()
}

// CheckKind fails fast when next is not the same category as w.
func CheckKind(op string, w, next Widget) {
	if !SameKind(w, next) {
		got := "<nil>"
		if next != nil {
			got = string(next.Kind())
		}
		errors.Mismatch(op, string(w.Kind()), got)
	}
}

// PatchTarget checks next against w and returns it as the concrete type W.
// Category types call it at the top of Update.
func PatchTarget[W Widget](op string, w, next Widget) W {
	CheckKind(op, w, next)
	target, ok := next.(W)
	if !ok {
		errors.Mismatch(op, string(w.Kind()), fmt.Sprintf("%T", next))
	}
	return target
}

// Fresh returns a copy of b that has not been realized. Create
// implementations use it so copies never share a live handle.
func (b Base) Fresh() Base {
	b.tk = nil
	b.handle = 0
	b.parent = 0
	b.inFlex = false
	return b
}
