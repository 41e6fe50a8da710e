package widgets

import (
	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Button is any member of the button family. The native class decides how it
// looks and whether it keeps a value.
//
// Every native activation posts the trigger's message.
type Button struct {
	core.Base

	value    core.Opt[bool]
	shortcut core.Opt[style.Shortcut]
	downBox  core.Opt[style.BoxType]
	on       *core.Trigger
}

// NewButton returns a button of the given native class.
func NewButton(class toolkit.Class, label string, on core.Thunk) *Button {
	b := &Button{Base: core.NewBase(class), on: core.NewTrigger(on)}
	*b.Common() = labelled(label)
	return b
}

// ButtonOf returns a push button that posts on's message when pressed.
func ButtonOf(label string, on core.Thunk) *Button {
	return NewButton(toolkit.ClassButton, label, on)
}

// RadioButtonOf returns a radio push button.
func RadioButtonOf(label string, on core.Thunk) *Button {
	return NewButton(toolkit.ClassRadioButton, label, on)
}

// ToggleButtonOf returns a push button that stays down.
func ToggleButtonOf(label string, on core.Thunk) *Button {
	return NewButton(toolkit.ClassToggleButton, label, on)
}

// RoundButtonOf returns a round indicator button.
func RoundButtonOf(label string, on core.Thunk) *Button {
	return NewButton(toolkit.ClassRoundButton, label, on)
}

// CheckButtonOf returns a check box.
func CheckButtonOf(label string, on core.Thunk) *Button {
	return NewButton(toolkit.ClassCheckButton, label, on)
}

// LightButtonOf returns a button with a light indicator.
func LightButtonOf(label string, on core.Thunk) *Button {
	return NewButton(toolkit.ClassLightButton, label, on)
}

// RepeatButtonOf returns a button that fires repeatedly while held.
func RepeatButtonOf(label string, on core.Thunk) *Button {
	return NewButton(toolkit.ClassRepeatButton, label, on)
}

// RadioLightButtonOf returns a radio button with a light indicator.
func RadioLightButtonOf(label string, on core.Thunk) *Button {
	return NewButton(toolkit.ClassRadioLightButton, label, on)
}

// RadioRoundButtonOf returns a round radio button.
func RadioRoundButtonOf(label string, on core.Thunk) *Button {
	return NewButton(toolkit.ClassRadioRoundButton, label, on)
}

// With returns a copy of the button with props applied.
func (b *Button) With(props ...Prop) *Button {
	return with(b, props)
}

// WithValue returns a copy of the button with its value set.
func (b *Button) WithValue(v bool) *Button {
	c := b.Create().(*Button)
	c.value = core.Some(v)
	return c
}

// WithShortcut returns a copy of the button activated by s.
func (b *Button) WithShortcut(s style.Shortcut) *Button {
	c := b.Create().(*Button)
	c.shortcut = core.Some(s)
	return c
}

// WithDownBox returns a copy of the button drawn with box while pressed.
func (b *Button) WithDownBox(box style.BoxType) *Button {
	c := b.Create().(*Button)
	c.downBox = core.Some(box)
	return c
}

// WithTrigger returns a copy of the button posting on's message. A nil on
// leaves the button inert.
func (b *Button) WithTrigger(on core.Thunk) *Button {
	c := b.Create().(*Button)
	c.on = core.NewTrigger(on)
	return c
}

// Value returns the declared value.
func (b *Button) Value() (bool, bool) {
	return b.value.Get()
}

func (b *Button) Create() core.Widget {
	c := *b
	c.Base = b.Base.Fresh()
	return &c
}

func (b *Button) View(tk toolkit.Toolkit) toolkit.Handle {
	h := b.Realize(tk)
	core.ApplyAttr(tk, h, toolkit.AttrValue, b.value)
	core.ApplyAttr(tk, h, toolkit.AttrDownBox, b.downBox)
	core.ApplyAttr(tk, h, toolkit.AttrShortcut, b.shortcut)
	if b.on != nil {
		tk.SetCallback(h, b.fire)
	}
	return h
}

func (b *Button) Update(next core.Widget) {
	n := core.PatchTarget[*Button]("Button.Update", b, next)
	b.Patch(&n.Base)
	tk, h := b.Toolkit(), b.Handle()
	core.PatchAttr(tk, h, toolkit.AttrValue, &b.value, n.value)
	core.PatchAttr(tk, h, toolkit.AttrShortcut, &b.shortcut, n.shortcut)
	core.PatchAttr(tk, h, toolkit.AttrDownBox, &b.downBox, n.downBox)
	core.SwapTrigger(tk, h, &b.on, n.on, b.fire)
}

func (b *Button) Destroy() {
	b.Release()
}

func (b *Button) fire(toolkit.Event) {
	b.on.Fire(b.Toolkit())
}
