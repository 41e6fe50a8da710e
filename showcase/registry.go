// Package showcase holds the reflex example applications.
package showcase

import (
	"github.com/go-drift/reflex/pkg/engine"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Demo is one showcase application.
type Demo struct {
	Name     string
	Title    string
	Subtitle string
	Category string
	// New returns a fresh application instance.
	New func() engine.Application
	// Settings returns the window settings the demo starts with.
	Settings func() engine.Settings
	// Classes are custom native classes the toolkit must know.
	Classes []toolkit.Class
	// Script is the interaction the CLI replays when given no steps.
	Script []string
}

// Category constants for demo organization.
const (
	CategoryBasics      = "basics"
	CategoryComposition = "composition"
)

// demos is the registry of all showcase demos.
var demos = []Demo{
	{
		Name: "counter", Title: "Counter", Subtitle: "Increment and decrement a label",
		Category: CategoryBasics, New: NewCounter, Settings: sized(400, 300),
		Script: []string{"tap:Increment", "tap:Increment", "tap:Decrement"},
	},
	{
		Name: "greeter", Title: "Greeter", Subtitle: "Two-way input binding",
		Category: CategoryBasics, New: NewGreeter, Settings: sized(400, 300),
		Script: []string{"type:Ada", "enter", "type:Grace", "tap:Greet"},
	},
	{
		Name: "todo", Title: "Todo", Subtitle: "Growing and shrinking lists",
		Category: CategoryBasics, New: NewTodo, Settings: sized(400, 300),
		Script: []string{"type:milk", "enter", "type:eggs", "tap:@>", "check:0"},
	},
	{
		Name: "custom", Title: "Custom widgets", Subtitle: "Wrapping custom native classes",
		Category: CategoryComposition, New: NewCustom, Settings: sized(400, 300),
		Classes: []toolkit.Class{ClassPushBox, ClassInvertedBox},
		Script:  []string{"tap:Click me!", "tap:Click me too!"},
	},
	{
		Name: "flutter", Title: "Flutter-like", Subtitle: "Material-style composition",
		Category: CategoryComposition, New: NewFlutter, Settings: flutterSettings,
		Script: []string{"tap:@+6plus", "tap:@+6plus"},
	},
}

// Demos returns every demo in registry order.
func Demos() []Demo {
	return append([]Demo(nil), demos...)
}

// Lookup returns the demo registered under name.
func Lookup(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

func sized(w, h int) func() engine.Settings {
	return func() engine.Settings {
		s := engine.DefaultSettings()
		s.Width, s.Height = w, h
		return s
	}
}
