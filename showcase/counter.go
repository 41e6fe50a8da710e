package showcase

import (
	"strconv"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/engine"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/widgets"
)

// CounterMsg is the counter's message set.
type CounterMsg int

const (
	Increment CounterMsg = iota
	Decrement
)

// Counter is a label between an increment and a decrement button.
type Counter struct {
	Value int
}

// NewCounter returns a counter starting at zero.
func NewCounter() engine.Application {
	return &Counter{}
}

func (c *Counter) Title() string { return "Counter" }

func (c *Counter) Update(msg core.Message) {
	switch msg {
	case Increment:
		c.Value++
	case Decrement:
		c.Value--
	}
}

func (c *Counter) View() core.Widget {
	return widgets.ColumnOf(
		widgets.ButtonOf("Increment", core.Emit(Increment)).With(widgets.Fixed(40)),
		widgets.BoxOf(strconv.Itoa(c.Value)).With(
			widgets.LabelType(style.LabelEngraved),
			widgets.LabelSize(20),
		),
		widgets.ButtonOf("Decrement", core.Emit(Decrement)).With(widgets.Fixed(40)),
	).WithMargin(40)
}
