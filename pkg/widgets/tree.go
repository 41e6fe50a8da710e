package widgets

import (
	"slices"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// DefaultItemSize is the label size of tree items and browser lines.
const DefaultItemSize = 14

// TreeItem is one node of a tree. Slashes in the label give its path.
type TreeItem struct {
	Label     string
	LabelSize int
}

// TreeItemOf returns an item with the default label size.
func TreeItemOf(label string) TreeItem {
	return TreeItem{Label: label, LabelSize: DefaultItemSize}
}

// WithLabelSize returns a copy of the item with its label size set.
func (it TreeItem) WithLabelSize(n int) TreeItem {
	it.LabelSize = n
	return it
}

// Tree shows a hierarchy of items.
type Tree struct {
	core.Base

	rootLabel core.Opt[string]
	items     []TreeItem
}

// TreeOf returns a tree holding items.
func TreeOf(items ...TreeItem) *Tree {
	return &Tree{Base: core.NewBase(toolkit.ClassTree), items: items}
}

// With returns a copy of the tree with props applied.
func (t *Tree) With(props ...Prop) *Tree {
	return with(t, props)
}

// WithRootLabel returns a copy of the tree with its root labelled s.
func (t *Tree) WithRootLabel(s string) *Tree {
	c := t.Create().(*Tree)
	c.rootLabel = core.Some(s)
	return c
}

// WithItems returns a copy of the tree holding items.
func (t *Tree) WithItems(items ...TreeItem) *Tree {
	c := t.Create().(*Tree)
	c.items = items
	return c
}

func (t *Tree) Create() core.Widget {
	c := *t
	c.Base = t.Base.Fresh()
	return &c
}

func (t *Tree) View(tk toolkit.Toolkit) toolkit.Handle {
	h := t.Realize(tk)
	core.ApplyAttr(tk, h, toolkit.AttrRootLabel, t.rootLabel)
	t.addItems()
	return h
}

func (t *Tree) Update(next core.Widget) {
	n := core.PatchTarget[*Tree]("Tree.Update", t, next)
	t.Patch(&n.Base)
	tk, h := t.Toolkit(), t.Handle()
	core.PatchAttr(tk, h, toolkit.AttrRootLabel, &t.rootLabel, n.rootLabel)
	if !slices.Equal(t.items, n.items) {
		t.items = n.items
		tk.ClearItems(h)
		t.addItems()
	}
}

func (t *Tree) Destroy() {
	t.Release()
}

func (t *Tree) addItems() {
	tk, h := t.Toolkit(), t.Handle()
	for _, it := range t.items {
		tk.AddItem(h, toolkit.Item{Label: it.Label, LabelSize: it.LabelSize})
	}
}
