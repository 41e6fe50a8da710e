package engine

import "github.com/go-drift/reflex/pkg/core"

// Application is what the runner drives. View and Update are only ever
// called from the UI goroutine.
type Application interface {
	// Title names the main window.
	Title() string
	// View builds the descriptor tree for the current state.
	View() core.Widget
	// Update applies msg to the application state.
	Update(msg core.Message)
}

// Program adapts value-style state and pure functions to Application.
type Program[S any] struct {
	title  string
	state  S
	view   func(S) core.Widget
	update func(S, core.Message) S
}

// NewProgram returns a program starting from init.
func NewProgram[S any](title string, init S, view func(S) core.Widget, update func(S, core.Message) S) *Program[S] {
	return &Program[S]{title: title, state: init, view: view, update: update}
}

func (p *Program[S]) Title() string {
	return p.title
}

func (p *Program[S]) View() core.Widget {
	return p.view(p.state)
}

func (p *Program[S]) Update(msg core.Message) {
	p.state = p.update(p.state, msg)
}

// State returns the current state.
func (p *Program[S]) State() S {
	return p.state
}
