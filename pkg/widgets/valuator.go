package widgets

import (
	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Valuator is any member of the valuator family: dials, sliders, counters,
// rollers, adjusters and scrollbars.
type Valuator struct {
	core.Base

	value     core.Opt[float64]
	minimum   core.Opt[float64]
	maximum   core.Opt[float64]
	step      core.Opt[float64]
	precision core.Opt[int]
	onChange  *changeTrigger
}

// changeTrigger maps the valuator's new value to a message.
type changeTrigger struct {
	fn func(float64) core.Message
}

// NewValuator returns a valuator of the given native class.
func NewValuator(class toolkit.Class) *Valuator {
	return &Valuator{Base: core.NewBase(class)}
}

// DialOf returns a round dial.
func DialOf() *Valuator { return NewValuator(toolkit.ClassDial) }

// SliderOf returns a vertical slider.
func SliderOf() *Valuator { return NewValuator(toolkit.ClassSlider) }

// NiceSliderOf returns a vertical slider with a styled knob.
func NiceSliderOf() *Valuator { return NewValuator(toolkit.ClassNiceSlider) }

// ValueSliderOf returns a vertical slider that prints its value.
func ValueSliderOf() *Valuator { return NewValuator(toolkit.ClassValueSlider) }

// LineDialOf returns a dial drawn as a single needle.
func LineDialOf() *Valuator { return NewValuator(toolkit.ClassLineDial) }

// CounterOf returns a counter with step arrows.
func CounterOf() *Valuator { return NewValuator(toolkit.ClassCounter) }

// ScrollbarOf returns a vertical scrollbar.
func ScrollbarOf() *Valuator { return NewValuator(toolkit.ClassScrollbar) }

// RollerOf returns a vertical roller.
func RollerOf() *Valuator { return NewValuator(toolkit.ClassRoller) }

// AdjusterOf returns an adjuster with coarse and fine handles.
func AdjusterOf() *Valuator { return NewValuator(toolkit.ClassAdjuster) }

// ValueInputOf returns a numeric input field.
func ValueInputOf() *Valuator { return NewValuator(toolkit.ClassValueInput) }

// ValueOutputOf returns a read-only numeric display.
func ValueOutputOf() *Valuator { return NewValuator(toolkit.ClassValueOutput) }

// FillSliderOf returns a vertical slider filled up to its value.
func FillSliderOf() *Valuator { return NewValuator(toolkit.ClassFillSlider) }

// FillDialOf returns a dial filled up to its value.
func FillDialOf() *Valuator { return NewValuator(toolkit.ClassFillDial) }

// HorSliderOf returns a horizontal slider.
func HorSliderOf() *Valuator { return NewValuator(toolkit.ClassHorSlider) }

// HorFillSliderOf returns a horizontal slider filled up to its value.
func HorFillSliderOf() *Valuator { return NewValuator(toolkit.ClassHorFillSlider) }

// HorNiceSliderOf returns a horizontal slider with a styled knob.
func HorNiceSliderOf() *Valuator { return NewValuator(toolkit.ClassHorNiceSlider) }

// HorValueSliderOf returns a horizontal slider that prints its value.
func HorValueSliderOf() *Valuator { return NewValuator(toolkit.ClassHorValueSlider) }

// With returns a copy of the valuator with props applied.
func (v *Valuator) With(props ...Prop) *Valuator {
	return with(v, props)
}

// WithValue returns a copy of the valuator set to x.
func (v *Valuator) WithValue(x float64) *Valuator {
	c := v.Create().(*Valuator)
	c.value = core.Some(x)
	return c
}

// WithRange returns a copy of the valuator bounded by [lo, hi].
func (v *Valuator) WithRange(lo, hi float64) *Valuator {
	c := v.Create().(*Valuator)
	c.minimum = core.Some(lo)
	c.maximum = core.Some(hi)
	return c
}

// WithStep returns a copy of the valuator moving in increments of s.
func (v *Valuator) WithStep(s float64) *Valuator {
	c := v.Create().(*Valuator)
	c.step = core.Some(s)
	return c
}

// WithPrecision returns a copy of the valuator rounding to n decimals.
func (v *Valuator) WithPrecision(n int) *Valuator {
	c := v.Create().(*Valuator)
	c.precision = core.Some(n)
	return c
}

// WithChange returns a copy of the valuator that posts fn(value) whenever
// the user moves it.
func (v *Valuator) WithChange(fn func(float64) core.Message) *Valuator {
	c := v.Create().(*Valuator)
	c.onChange = nil
	if fn != nil {
		c.onChange = &changeTrigger{fn: fn}
	}
	return c
}

func (v *Valuator) Create() core.Widget {
	c := *v
	c.Base = v.Base.Fresh()
	return &c
}

func (v *Valuator) View(tk toolkit.Toolkit) toolkit.Handle {
	h := v.Realize(tk)
	core.ApplyAttr(tk, h, toolkit.AttrValue, v.value)
	core.ApplyAttr(tk, h, toolkit.AttrMinimum, v.minimum)
	core.ApplyAttr(tk, h, toolkit.AttrMaximum, v.maximum)
	core.ApplyAttr(tk, h, toolkit.AttrStep, v.step)
	core.ApplyAttr(tk, h, toolkit.AttrPrecision, v.precision)
	if v.onChange != nil {
		tk.SetCallback(h, v.changed)
	}
	return h
}

func (v *Valuator) Update(next core.Widget) {
	n := core.PatchTarget[*Valuator]("Valuator.Update", v, next)
	v.Patch(&n.Base)
	tk, h := v.Toolkit(), v.Handle()
	core.PatchAttr(tk, h, toolkit.AttrValue, &v.value, n.value)
	core.PatchAttr(tk, h, toolkit.AttrMinimum, &v.minimum, n.minimum)
	core.PatchAttr(tk, h, toolkit.AttrMaximum, &v.maximum, n.maximum)
	core.PatchAttr(tk, h, toolkit.AttrStep, &v.step, n.step)
	core.PatchAttr(tk, h, toolkit.AttrPrecision, &v.precision, n.precision)

	had := v.onChange != nil
	v.onChange = n.onChange
	switch {
	case !had && v.onChange != nil:
		tk.SetCallback(h, v.changed)
	case had && v.onChange == nil:
		tk.SetCallback(h, nil)
	}
}

func (v *Valuator) Destroy() {
	v.Release()
}

// changed captures the native value now and defers the message.
func (v *Valuator) changed(toolkit.Event) {
	if v.onChange == nil {
		return
	}
	tk := v.Toolkit()
	raw, _ := tk.Attr(v.Handle(), toolkit.AttrValue)
	x, _ := raw.(float64)
	fn := v.onChange.fn
	tk.Awake(core.Thunk(func() core.Message { return fn(x) }))
}
