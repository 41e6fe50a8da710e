package widgets

import (
	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Input is any member of the text input family.
//
// A bound input writes every edit back to the bound string, so a trigger
// thunk can read the current text when it runs. Pressing enter posts the
// trigger's message. Unless a When prop is given, a wired input reports
// changes, plus enter presses when it has a trigger.
type Input struct {
	core.Base

	bind  *string
	value core.Opt[string]
	shown core.Opt[string]
	text  textStyle
	on    *core.Trigger
	wired bool
}

// NewInput returns an input of the given native class.
func NewInput(class toolkit.Class) *Input {
	return &Input{Base: core.NewBase(class)}
}

// InputOf returns a single line input bound to value. A nil value leaves
// the input unbound.
func InputOf(value *string) *Input {
	in := NewInput(toolkit.ClassInput)
	in.bind = value
	return in
}

// IntInputOf returns an input accepting integers.
func IntInputOf(value *string) *Input {
	in := NewInput(toolkit.ClassIntInput)
	in.bind = value
	return in
}

// FloatInputOf returns an input accepting floating point numbers.
func FloatInputOf(value *string) *Input {
	in := NewInput(toolkit.ClassFloatInput)
	in.bind = value
	return in
}

// MultilineInputOf returns a multi line input.
func MultilineInputOf(value *string) *Input {
	in := NewInput(toolkit.ClassMultilineInput)
	in.bind = value
	return in
}

// SecretInputOf returns an input that masks its text.
func SecretInputOf(value *string) *Input {
	in := NewInput(toolkit.ClassSecretInput)
	in.bind = value
	return in
}

// FileInputOf returns an input showing a file path.
func FileInputOf(value *string) *Input {
	in := NewInput(toolkit.ClassFileInput)
	in.bind = value
	return in
}

// With returns a copy of the input with props applied.
func (in *Input) With(props ...Prop) *Input {
	return with(in, props)
}

// WithBind returns a copy of the input bound to value.
func (in *Input) WithBind(value *string) *Input {
	c := in.Create().(*Input)
	c.bind = value
	return c
}

// WithValue returns a copy of the input showing s. A bound input shows the
// bound string instead.
func (in *Input) WithValue(s string) *Input {
	c := in.Create().(*Input)
	c.value = core.Some(s)
	return c
}

// WithTextColor returns a copy of the input with its text color set.
func (in *Input) WithTextColor(col style.Color) *Input {
	c := in.Create().(*Input)
	c.text.color = core.Some(col)
	return c
}

// WithTextFont returns a copy of the input with its text font set.
func (in *Input) WithTextFont(f style.Font) *Input {
	c := in.Create().(*Input)
	c.text.font = core.Some(f)
	return c
}

// WithTextSize returns a copy of the input with its text size set.
func (in *Input) WithTextSize(n int) *Input {
	c := in.Create().(*Input)
	c.text.size = core.Some(n)
	return c
}

// WithTrigger returns a copy of the input posting on's message on enter.
func (in *Input) WithTrigger(on core.Thunk) *Input {
	c := in.Create().(*Input)
	c.on = core.NewTrigger(on)
	return c
}

// Text returns the text the input is declared to show.
func (in *Input) Text() (string, bool) {
	return in.desired().Get()
}

func (in *Input) desired() core.Opt[string] {
	if in.bind != nil {
		return core.Some(*in.bind)
	}
	return in.value
}

func (in *Input) needsCallback() bool {
	return in.bind != nil || in.on != nil
}

// settle fills in the default event mask of a wired input.
func (in *Input) settle() {
	p := in.Common()
	if p.When.IsSet() || !in.needsCallback() {
		return
	}
	when := style.WhenChanged
	if in.on != nil {
		when |= style.WhenEnterKeyAlways
	}
	p.When = core.Some(when)
}

func (in *Input) Create() core.Widget {
	c := *in
	c.Base = in.Base.Fresh()
	c.shown = core.None[string]()
	c.wired = false
	return &c
}

func (in *Input) View(tk toolkit.Toolkit) toolkit.Handle {
	in.settle()
	h := in.Realize(tk)
	in.shown = in.desired()
	core.ApplyAttr(tk, h, toolkit.AttrValue, in.shown)
	in.text.view(tk, h)
	if in.needsCallback() {
		tk.SetCallback(h, in.handle)
		in.wired = true
	}
	return h
}

func (in *Input) Update(next core.Widget) {
	n := core.PatchTarget[*Input]("Input.Update", in, next)
	n.settle()
	in.Patch(&n.Base)
	tk, h := in.Toolkit(), in.Handle()

	// A bound input is compared against the native text. An unbound one
	// only follows changes to its declared value, so typed text survives.
	if n.bind != nil {
		in.bind, in.value = n.bind, n.value
		core.PatchAttr(tk, h, toolkit.AttrValue, &in.shown, in.desired())
	} else {
		in.bind = nil
		if in.value != n.value {
			core.PatchAttr(tk, h, toolkit.AttrValue, &in.value, n.value)
			in.shown = n.value
		}
	}
	in.text.update(tk, h, n.text)

	in.on = n.on
	switch want := in.needsCallback(); {
	case want && !in.wired:
		tk.SetCallback(h, in.handle)
	case !want && in.wired:
		tk.SetCallback(h, nil)
	}
	in.wired = in.needsCallback()
}

func (in *Input) Destroy() {
	in.Release()
}

func (in *Input) handle(ev toolkit.Event) {
	tk := in.Toolkit()
	switch ev.Reason {
	case toolkit.ReasonChanged:
		v, _ := tk.Attr(in.Handle(), toolkit.AttrValue)
		s, _ := v.(string)
		in.shown = core.Some(s)
		if in.bind != nil {
			*in.bind = s
		}
	case toolkit.ReasonEnterKey:
		in.on.Fire(tk)
	}
}
