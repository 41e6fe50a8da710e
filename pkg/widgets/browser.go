package widgets

import (
	"slices"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// DefaultColumnWidth is the column width of a browser line.
const DefaultColumnWidth = 50

// BrowserItem is one line of a browser.
type BrowserItem struct {
	Label string
	Width int
}

// BrowserItemOf returns a line with the default column width.
func BrowserItemOf(label string) BrowserItem {
	return BrowserItem{Label: label, Width: DefaultColumnWidth}
}

// WithWidth returns a copy of the line with its column width set.
func (it BrowserItem) WithWidth(w int) BrowserItem {
	it.Width = w
	return it
}

// Browser is any member of the browser family.
//
// At most one line is selected through Select; changing it deselects the
// previous line first.
type Browser struct {
	core.Base

	items      []BrowserItem
	columnChar rune
	textSize   int
	selected   core.Opt[int]
	topLine    core.Opt[int]
	middleLine core.Opt[int]
	bottomLine core.Opt[int]
}

// NewBrowser returns a browser of the given native class.
func NewBrowser(class toolkit.Class, items ...BrowserItem) *Browser {
	return &Browser{
		Base:       core.NewBase(class),
		items:      items,
		columnChar: '\t',
		textSize:   DefaultItemSize,
	}
}

// BrowserOf returns a plain browser.
func BrowserOf(items ...BrowserItem) *Browser {
	return NewBrowser(toolkit.ClassBrowser, items...)
}

// HoldBrowserOf returns a browser keeping one line highlighted.
func HoldBrowserOf(items ...BrowserItem) *Browser {
	return NewBrowser(toolkit.ClassHoldBrowser, items...)
}

// SelectBrowserOf returns a browser selecting one line at a time.
func SelectBrowserOf(items ...BrowserItem) *Browser {
	return NewBrowser(toolkit.ClassSelectBrowser, items...)
}

// MultiBrowserOf returns a browser selecting many lines.
func MultiBrowserOf(items ...BrowserItem) *Browser {
	return NewBrowser(toolkit.ClassMultiBrowser, items...)
}

// FileBrowserOf returns a browser listing files.
func FileBrowserOf(items ...BrowserItem) *Browser {
	return NewBrowser(toolkit.ClassFileBrowser, items...)
}

// With returns a copy of the browser with props applied.
func (b *Browser) With(props ...Prop) *Browser {
	return with(b, props)
}

// WithItems returns a copy of the browser holding items.
func (b *Browser) WithItems(items ...BrowserItem) *Browser {
	c := b.Create().(*Browser)
	c.items = items
	return c
}

// WithColumnChar returns a copy of the browser splitting columns at r.
func (b *Browser) WithColumnChar(r rune) *Browser {
	c := b.Create().(*Browser)
	c.columnChar = r
	return c
}

// WithTextSize returns a copy of the browser with its text size set.
func (b *Browser) WithTextSize(n int) *Browser {
	c := b.Create().(*Browser)
	c.textSize = n
	return c
}

// WithSelect returns a copy of the browser with line selected. Lines count
// from 1.
func (b *Browser) WithSelect(line int) *Browser {
	c := b.Create().(*Browser)
	c.selected = core.Some(line)
	return c
}

// WithTopLine returns a copy of the browser scrolled so line is first.
func (b *Browser) WithTopLine(line int) *Browser {
	c := b.Create().(*Browser)
	c.topLine = core.Some(line)
	return c
}

// WithMiddleLine returns a copy of the browser scrolled so line is centered.
func (b *Browser) WithMiddleLine(line int) *Browser {
	c := b.Create().(*Browser)
	c.middleLine = core.Some(line)
	return c
}

// WithBottomLine returns a copy of the browser scrolled so line is last.
func (b *Browser) WithBottomLine(line int) *Browser {
	c := b.Create().(*Browser)
	c.bottomLine = core.Some(line)
	return c
}

// ColumnWidths returns the native column width list: one width per line,
// terminated by 0.
func (b *Browser) ColumnWidths() []int {
	widths := make([]int, 0, len(b.items)+1)
	for _, it := range b.items {
		widths = append(widths, it.Width)
	}
	return append(widths, 0)
}

func (b *Browser) Create() core.Widget {
	c := *b
	c.Base = b.Base.Fresh()
	return &c
}

func (b *Browser) View(tk toolkit.Toolkit) toolkit.Handle {
	h := b.Realize(tk)
	b.addItems()
	tk.SetAttr(h, toolkit.AttrTextSize, b.textSize)
	tk.SetAttr(h, toolkit.AttrColumnChar, b.columnChar)
	if line, ok := b.selected.Get(); ok {
		tk.SetAttr(h, toolkit.AttrSelect, toolkit.Selection{Line: line, On: true})
	}
	core.ApplyAttr(tk, h, toolkit.AttrTopLine, b.topLine)
	core.ApplyAttr(tk, h, toolkit.AttrMiddleLine, b.middleLine)
	core.ApplyAttr(tk, h, toolkit.AttrBottomLine, b.bottomLine)
	return h
}

func (b *Browser) Update(next core.Widget) {
	n := core.PatchTarget[*Browser]("Browser.Update", b, next)
	b.Patch(&n.Base)
	tk, h := b.Toolkit(), b.Handle()
	if !slices.Equal(b.items, n.items) {
		b.items = n.items
		tk.ClearItems(h)
		b.addItems()
	}
	if b.textSize != n.textSize {
		b.textSize = n.textSize
		tk.SetAttr(h, toolkit.AttrTextSize, b.textSize)
	}
	if b.columnChar != n.columnChar {
		b.columnChar = n.columnChar
		tk.SetAttr(h, toolkit.AttrColumnChar, b.columnChar)
	}
	if b.selected != n.selected {
		if line, ok := b.selected.Get(); ok {
			tk.SetAttr(h, toolkit.AttrSelect, toolkit.Selection{Line: line})
		}
		b.selected = n.selected
		if line, ok := b.selected.Get(); ok {
			tk.SetAttr(h, toolkit.AttrSelect, toolkit.Selection{Line: line, On: true})
		}
	}
	core.PatchAttr(tk, h, toolkit.AttrTopLine, &b.topLine, n.topLine)
	core.PatchAttr(tk, h, toolkit.AttrMiddleLine, &b.middleLine, n.middleLine)
	core.PatchAttr(tk, h, toolkit.AttrBottomLine, &b.bottomLine, n.bottomLine)
}

func (b *Browser) Destroy() {
	b.Release()
}

// addItems appends every line and installs a freshly built width list.
func (b *Browser) addItems() {
	tk, h := b.Toolkit(), b.Handle()
	for _, it := range b.items {
		tk.AddItem(h, toolkit.Item{Label: it.Label})
	}
	tk.SetAttr(h, toolkit.AttrColumnWidths, b.ColumnWidths())
}
