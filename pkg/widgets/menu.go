package widgets

import (
	"slices"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// MenuItem is one entry of a menu. Items are compared without their
// triggers: a rebuilt view with fresh closures keeps the native items.
type MenuItem struct {
	Label     string
	Shortcut  style.Shortcut
	Flag      style.MenuFlag
	LabelSize core.Opt[int]
	On        core.Thunk
}

// MenuItemOf returns an item posting on's message when picked. Slashes in
// label create submenus.
func MenuItemOf(label string, on core.Thunk) MenuItem {
	return MenuItem{Label: label, On: on}
}

// WithShortcut returns a copy of the item activated by s.
func (it MenuItem) WithShortcut(s style.Shortcut) MenuItem {
	it.Shortcut = s
	return it
}

// WithFlag returns a copy of the item with flag set.
func (it MenuItem) WithFlag(flag style.MenuFlag) MenuItem {
	it.Flag = flag
	return it
}

// WithLabelSize returns a copy of the item with its label size set.
func (it MenuItem) WithLabelSize(n int) MenuItem {
	it.LabelSize = core.Some(n)
	return it
}

func (it MenuItem) sameAs(o MenuItem) bool {
	return it.Label == o.Label && it.Shortcut == o.Shortcut &&
		it.Flag == o.Flag && it.LabelSize == o.LabelSize
}

// Menu is any member of the menu family: menu bars and choices.
type Menu struct {
	core.Base

	items []MenuItem
}

// NewMenu returns a menu of the given native class.
func NewMenu(class toolkit.Class, items ...MenuItem) *Menu {
	return &Menu{Base: core.NewBase(class), items: items}
}

// MenuBarOf returns a menu bar.
func MenuBarOf(items ...MenuItem) *Menu {
	return NewMenu(toolkit.ClassMenuBar, items...)
}

// SysMenuBarOf returns a menu bar using the system menu where there is one.
func SysMenuBarOf(items ...MenuItem) *Menu {
	return NewMenu(toolkit.ClassSysMenuBar, items...)
}

// ChoiceOf returns a drop-down choice.
func ChoiceOf(items ...MenuItem) *Menu {
	return NewMenu(toolkit.ClassChoice, items...)
}

// With returns a copy of the menu with props applied.
func (m *Menu) With(props ...Prop) *Menu {
	return with(m, props)
}

// WithItems returns a copy of the menu holding items.
func (m *Menu) WithItems(items ...MenuItem) *Menu {
	c := m.Create().(*Menu)
	c.items = items
	return c
}

// Items returns the declared items.
func (m *Menu) Items() []MenuItem {
	return m.items
}

func (m *Menu) Create() core.Widget {
	c := *m
	c.Base = m.Base.Fresh()
	return &c
}

func (m *Menu) View(tk toolkit.Toolkit) toolkit.Handle {
	h := m.Realize(tk)
	m.addItems()
	return h
}

func (m *Menu) Update(next core.Widget) {
	n := core.PatchTarget[*Menu]("Menu.Update", m, next)
	m.Patch(&n.Base)
	same := slices.EqualFunc(m.items, n.items, MenuItem.sameAs)
	m.items = n.items
	if !same {
		m.Toolkit().ClearItems(m.Handle())
		m.addItems()
	}
}

func (m *Menu) Destroy() {
	m.Release()
}

func (m *Menu) addItems() {
	tk, h := m.Toolkit(), m.Handle()
	for i, it := range m.items {
		tk.AddItem(h, toolkit.Item{
			Label:     it.Label,
			Shortcut:  int(it.Shortcut),
			Flags:     int(it.Flag),
			LabelSize: it.LabelSize.Or(0),
			Callback:  func() { m.pick(i) },
		})
	}
}

// pick posts the current trigger of item i.
func (m *Menu) pick(i int) {
	if i >= len(m.items) || m.items[i].On == nil {
		return
	}
	m.Toolkit().Awake(m.items[i].On)
}
