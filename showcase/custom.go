package showcase

import (
	"fmt"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/engine"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
	"github.com/go-drift/reflex/pkg/widgets"
)

// Custom native classes used by the custom widgets demo. Hosts register
// them with their toolkit before starting the demo.
const (
	ClassPushBox     toolkit.Class = "PushBox"
	ClassInvertedBox toolkit.Class = "InvertedBox"
)

// Pushed reports a press on the inverted box.
type Pushed struct{}

// InvertedBox is a hand-written category over ClassInvertedBox: a flat white
// box that posts its trigger when pressed.
type InvertedBox struct {
	core.Base
	on *core.Trigger
}

// InvertedBoxOf returns an inverted box showing label.
func InvertedBoxOf(label string, on core.Thunk) *InvertedBox {
	b := &InvertedBox{Base: core.NewBase(ClassInvertedBox), on: core.NewTrigger(on)}
	for _, p := range []widgets.Prop{
		widgets.Label(label),
		widgets.Frame(style.FlatBox),
		widgets.Color(style.White),
		widgets.LabelColor(style.Blue),
		widgets.LabelFont(style.TimesBold),
		widgets.LabelSize(30),
	} {
		p(b.Common())
	}
	return b
}

func (b *InvertedBox) Create() core.Widget {
	c := *b
	c.Base = b.Base.Fresh()
	return &c
}

func (b *InvertedBox) View(tk toolkit.Toolkit) toolkit.Handle {
	h := b.Realize(tk)
	if b.on != nil {
		tk.SetCallback(h, b.fire)
	}
	return h
}

func (b *InvertedBox) Update(next core.Widget) {
	n := core.PatchTarget[*InvertedBox]("InvertedBox.Update", b, next)
	b.Patch(&n.Base)
	core.SwapTrigger(b.Toolkit(), b.Handle(), &b.on, n.on, b.fire)
}

func (b *InvertedBox) Destroy() {
	b.Release()
}

func (b *InvertedBox) fire(toolkit.Event) {
	b.on.Fire(b.Toolkit())
}

// Custom shows a custom class wrapped with only the common properties next
// to a fully hand-written category.
type Custom struct {
	Pushes int
}

// NewCustom returns the custom widgets demo.
func NewCustom() engine.Application {
	return &Custom{}
}

func (c *Custom) Title() string { return "Derived" }

func (c *Custom) Update(msg core.Message) {
	if _, ok := msg.(Pushed); ok {
		c.Pushes++
	}
}

func (c *Custom) View() core.Widget {
	return widgets.ColumnOf(
		widgets.CustomOf(ClassPushBox).With(
			widgets.Label("Click me!"),
			widgets.Frame(style.FlatBox),
			widgets.Color(style.Black),
			widgets.LabelColor(style.White),
		),
		InvertedBoxOf("Click me too!", core.Emit(Pushed{})),
		widgets.BoxOf(fmt.Sprintf("pushed %d times", c.Pushes)).With(widgets.Fixed(30)),
	).WithMargin(40)
}
