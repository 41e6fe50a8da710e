package widgets

import (
	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Flex and pack orientations, stored as the native subtype.
const (
	flexColumn     = 0
	flexRow        = 1
	packVertical   = 0
	packHorizontal = 1
)

// Group is any container: plain groups, flexes, packs, scrolls, tabs and
// tiles. Children are reconciled by position.
//
// A fill child, when set, receives the container's whole geometry every time
// the container is resized.
type Group struct {
	core.Base

	children []core.Widget
	fill     core.Opt[int]
	margins  core.Opt[toolkit.Margins]
	spacing  core.Opt[int]

	fillHandle toolkit.Handle
}

// NewGroup returns a container of the given native class.
func NewGroup(class toolkit.Class, children ...core.Widget) *Group {
	return &Group{Base: core.NewBase(class), children: children}
}

// GroupOf returns a plain group. Children keep their declared geometry.
func GroupOf(children ...core.Widget) *Group {
	return NewGroup(toolkit.ClassGroup, children...)
}

// ScrollOf returns a scrolling group.
func ScrollOf(children ...core.Widget) *Group {
	return NewGroup(toolkit.ClassScroll, children...)
}

// TabsOf returns a tabbed group; each child's label names its tab.
func TabsOf(children ...core.Widget) *Group {
	return NewGroup(toolkit.ClassTabs, children...)
}

// TileOf returns a group whose children can be resized by dragging borders.
func TileOf(children ...core.Widget) *Group {
	return NewGroup(toolkit.ClassTile, children...)
}

// ColumnOf returns a flex laying children out top to bottom.
func ColumnOf(children ...core.Widget) *Group {
	g := NewGroup(toolkit.ClassFlex, children...)
	g.Common().Subtype = core.Some(flexColumn)
	return g
}

// RowOf returns a flex laying children out left to right.
func RowOf(children ...core.Widget) *Group {
	g := NewGroup(toolkit.ClassFlex, children...)
	g.Common().Subtype = core.Some(flexRow)
	return g
}

// PackOf returns a vertical pack.
func PackOf(children ...core.Widget) *Group {
	g := NewGroup(toolkit.ClassPack, children...)
	g.Common().Subtype = core.Some(packVertical)
	return g
}

// With returns a copy of the group with props applied.
func (g *Group) With(props ...Prop) *Group {
	return with(g, props)
}

// WithChildren returns a copy of the group holding children.
func (g *Group) WithChildren(children ...core.Widget) *Group {
	c := g.Create().(*Group)
	c.children = children
	return c
}

// WithFill returns a copy of the group that resizes child index with itself.
func (g *Group) WithFill(index int) *Group {
	c := g.Create().(*Group)
	c.fill = core.Some(index)
	return c
}

// Column returns a copy of a flex laid out top to bottom.
func (g *Group) Column() *Group {
	return g.With(Subtype(flexColumn))
}

// Row returns a copy of a flex laid out left to right.
func (g *Group) Row() *Group {
	return g.With(Subtype(flexRow))
}

// Vertical returns a copy of a pack stacking children top to bottom.
func (g *Group) Vertical() *Group {
	return g.With(Subtype(packVertical))
}

// Horizontal returns a copy of a pack stacking children left to right.
func (g *Group) Horizontal() *Group {
	return g.With(Subtype(packHorizontal))
}

// WithMargins returns a copy of a flex with the given inner margins.
func (g *Group) WithMargins(left, top, right, bottom int) *Group {
	c := g.Create().(*Group)
	c.margins = core.Some(toolkit.Margins{Left: left, Top: top, Right: right, Bottom: bottom})
	return c
}

// WithMargin returns a copy of a flex with the same margin on every side.
func (g *Group) WithMargin(m int) *Group {
	return g.WithMargins(m, m, m, m)
}

// WithSpacing returns a copy of a pack leaving n pixels between children.
func (g *Group) WithSpacing(n int) *Group {
	c := g.Create().(*Group)
	c.spacing = core.Some(n)
	return c
}

// Children returns the current child descriptors. After an update these are
// the live descriptors, not the ones passed in.
func (g *Group) Children() []core.Widget {
	return g.children
}

func (g *Group) isFlex() bool {
	return g.Kind() == toolkit.ClassFlex
}

func (g *Group) Create() core.Widget {
	c := *g
	c.Base = g.Base.Fresh()
	c.fillHandle = 0
	return &c
}

func (g *Group) View(tk toolkit.Toolkit) toolkit.Handle {
	h := g.Realize(tk)
	children := make([]core.Widget, len(g.children))
	for i, child := range g.children {
		children[i] = core.Realize(tk, h, child, g.isFlex())
	}
	g.children = children
	core.ApplyAttr(tk, h, toolkit.AttrMargins, g.margins)
	core.ApplyAttr(tk, h, toolkit.AttrSpacing, g.spacing)
	g.bindFill()
	tk.End(h)
	return h
}

func (g *Group) Update(next core.Widget) {
	n := core.PatchTarget[*Group]("Group.Update", g, next)
	g.Patch(&n.Base)
	tk, h := g.Toolkit(), g.Handle()
	core.PatchAttr(tk, h, toolkit.AttrMargins, &g.margins, n.margins)
	core.PatchAttr(tk, h, toolkit.AttrSpacing, &g.spacing, n.spacing)

	children, structural := core.ReconcileChildren(tk, h, g.children, n.children, g.isFlex())
	g.children = children
	g.fill = n.fill
	g.bindFill()
	if structural {
		tk.Redraw(h)
	}
}

func (g *Group) Destroy() {
	core.DestroyChildren(g.Toolkit(), g.Handle(), g.children)
	g.children = nil
	g.fillHandle = 0
	g.Release()
}

// bindFill points the container's resize handling at the current fill
// child. It makes no call while the bound handle is unchanged.
func (g *Group) bindFill() {
	tk, h := g.Toolkit(), g.Handle()
	var child toolkit.Handle
	if i, ok := g.fill.Get(); ok && i >= 0 && i < len(g.children) {
		child = g.children[i].Handle()
	}
	if child == g.fillHandle {
		return
	}
	switch {
	case child == 0:
		tk.SetResizeHandler(h, nil)
	case g.fillHandle == 0:
		tk.SetResizeHandler(h, g.resizeFill)
	}
	tk.SetResizable(h, child)
	g.fillHandle = child
}

func (g *Group) resizeFill(r toolkit.Rect) {
	if g.fillHandle != 0 {
		g.Toolkit().SetGeometry(g.fillHandle, r)
	}
}
