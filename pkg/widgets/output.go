package widgets

import (
	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Output shows read-only text.
type Output struct {
	core.Base

	value core.Opt[string]
	text  textStyle
}

// OutputOf returns a single line output showing value.
func OutputOf(value string) *Output {
	return &Output{Base: core.NewBase(toolkit.ClassOutput), value: core.Some(value)}
}

// MultilineOutputOf returns a multi line output showing value.
func MultilineOutputOf(value string) *Output {
	return &Output{Base: core.NewBase(toolkit.ClassMultilineOutput), value: core.Some(value)}
}

// With returns a copy of the output with props applied.
func (o *Output) With(props ...Prop) *Output {
	return with(o, props)
}

// WithValue returns a copy of the output showing s.
func (o *Output) WithValue(s string) *Output {
	c := o.Create().(*Output)
	c.value = core.Some(s)
	return c
}

// WithTextColor returns a copy of the output with its text color set.
func (o *Output) WithTextColor(col style.Color) *Output {
	c := o.Create().(*Output)
	c.text.color = core.Some(col)
	return c
}

// WithTextFont returns a copy of the output with its text font set.
func (o *Output) WithTextFont(f style.Font) *Output {
	c := o.Create().(*Output)
	c.text.font = core.Some(f)
	return c
}

// WithTextSize returns a copy of the output with its text size set.
func (o *Output) WithTextSize(n int) *Output {
	c := o.Create().(*Output)
	c.text.size = core.Some(n)
	return c
}

func (o *Output) Create() core.Widget {
	c := *o
	c.Base = o.Base.Fresh()
	return &c
}

func (o *Output) View(tk toolkit.Toolkit) toolkit.Handle {
	h := o.Realize(tk)
	core.ApplyAttr(tk, h, toolkit.AttrValue, o.value)
	o.text.view(tk, h)
	return h
}

func (o *Output) Update(next core.Widget) {
	n := core.PatchTarget[*Output]("Output.Update", o, next)
	o.Patch(&n.Base)
	tk, h := o.Toolkit(), o.Handle()
	core.PatchAttr(tk, h, toolkit.AttrValue, &o.value, n.value)
	o.text.update(tk, h, n.text)
}

func (o *Output) Destroy() {
	o.Release()
}
