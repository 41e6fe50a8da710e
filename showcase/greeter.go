package showcase

import (
	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/engine"
	"github.com/go-drift/reflex/pkg/widgets"
)

// Name asks the greeter to greet someone.
type Name string

// Greeter greets whoever is typed into its input.
type Greeter struct {
	Message string
	input   *string
}

// NewGreeter returns a greeter with an empty input.
func NewGreeter() engine.Application {
	return &Greeter{input: new(string)}
}

func (g *Greeter) Title() string { return "Greeter" }

func (g *Greeter) Update(msg core.Message) {
	if name, ok := msg.(Name); ok && name != "" {
		g.Message = "Hello " + string(name)
	}
}

func (g *Greeter) View() core.Widget {
	greet := func() core.Message { return Name(*g.input) }
	return widgets.ColumnOf(
		widgets.BoxOf("Enter name!"),
		widgets.InputOf(g.input).WithTrigger(greet).With(widgets.Fixed(40)),
		widgets.BoxOf(g.Message),
		widgets.ButtonOf("Greet", greet).With(widgets.Fixed(40)),
	).WithMargins(40, 20, 40, 20)
}
