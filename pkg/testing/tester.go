package testing

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/engine"
	"github.com/go-drift/reflex/pkg/headless"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// ErrNotFound is returned by actions whose finder matched nothing.
var ErrNotFound = errors.New("testing: finder matched no handles")

// AppTester runs one application on a headless toolkit and drives it with
// simulated native events.
type AppTester struct {
	tk     *headless.Toolkit
	runner *engine.Runner
}

// NewAppTester starts app on a fresh headless toolkit that also knows the
// given custom classes. Call Close when done, or use NewAppTesterWithT
// instead.
func NewAppTester(app engine.Application, settings engine.Settings, classes ...toolkit.Class) (*AppTester, error) {
	tk := headless.New()
	for _, c := range classes {
		tk.RegisterClass(c)
	}
	r := engine.NewRunner(app, tk, settings)
	if err := r.Start(); err != nil {
		return nil, err
	}
	return &AppTester{tk: tk, runner: r}, nil
}

// NewAppTesterWithT starts app with default settings and closes the window
// via t.Cleanup(). This is the recommended constructor for tests.
func NewAppTesterWithT(t *testing.T, app engine.Application) *AppTester {
	t.Helper()
	tester, err := NewAppTester(app, engine.DefaultSettings())
	if err != nil {
		t.Fatalf("start %q: %v", app.Title(), err)
	}
	t.Cleanup(tester.Close)
	return tester
}

// Close simulates the window closing and drains the queue.
func (a *AppTester) Close() {
	a.tk.Close()
	_ = a.Pump()
}

// Toolkit returns the headless toolkit for direct inspection.
func (a *AppTester) Toolkit() *headless.Toolkit {
	return a.tk
}

// Runner returns the runner driving the application.
func (a *AppTester) Runner() *engine.Runner {
	return a.runner
}

// Pump runs one update cycle per queued payload until the queue drains.
func (a *AppTester) Pump() error {
	for {
		p, ok := a.tk.Poll()
		if !ok {
			return nil
		}
		if err := a.runner.Dispatch(p); err != nil {
			return err
		}
	}
}

// Send posts msg and pumps.
func (a *AppTester) Send(msg core.Message) error {
	a.runner.Post(msg)
	return a.Pump()
}

// Find evaluates f against the window's subtree.
func (a *AppTester) Find(f Finder) FinderResult {
	return FinderResult{tk: a.tk, handles: f.Evaluate(a.tk, a.runner.Window()), finder: f}
}

func (a *AppTester) first(f Finder) (toolkit.Handle, error) {
	res := a.Find(f)
	if !res.Exists() {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, f.Description())
	}
	return res.First(), nil
}

func (a *AppTester) act(f Finder, fire func(toolkit.Handle) error) error {
	h, err := a.first(f)
	if err != nil {
		return err
	}
	if err := fire(h); err != nil {
		return err
	}
	return a.Pump()
}

// Tap activates the first match, as a click on a button would.
func (a *AppTester) Tap(f Finder) error {
	return a.act(f, func(h toolkit.Handle) error {
		return a.tk.Fire(h, toolkit.ReasonActivated)
	})
}

// TapNth activates the nth match in traversal order.
func (a *AppTester) TapNth(f Finder, n int) error {
	res := a.Find(f)
	if n < 0 || n >= res.Count() {
		return fmt.Errorf("%w: %s[%d]", ErrNotFound, f.Description(), n)
	}
	if err := a.tk.Fire(res.At(n), toolkit.ReasonActivated); err != nil {
		return err
	}
	return a.Pump()
}

// Type replaces the text of the first matching input.
func (a *AppTester) Type(f Finder, text string) error {
	return a.act(f, func(h toolkit.Handle) error {
		return a.tk.Type(h, text)
	})
}

// Enter presses the enter key in the first matching input.
func (a *AppTester) Enter(f Finder) error {
	return a.act(f, func(h toolkit.Handle) error {
		return a.tk.Fire(h, toolkit.ReasonEnterKey)
	})
}

// Slide moves the first matching valuator to value.
func (a *AppTester) Slide(f Finder, value float64) error {
	return a.act(f, func(h toolkit.Handle) error {
		return a.tk.Set(h, value)
	})
}

// Pick chooses the item labelled label in the first matching menu, tree or
// browser.
func (a *AppTester) Pick(f Finder, label string) error {
	return a.act(f, func(h toolkit.Handle) error {
		i := itemIndex(a.tk.Node(h), label)
		if i < 0 {
			return fmt.Errorf("%w: item %q in %s", ErrNotFound, label, f.Description())
		}
		return a.tk.Pick(h, i)
	})
}

// Resize simulates the user resizing the window and pumps.
func (a *AppTester) Resize(w, h int) error {
	win := a.runner.Window()
	r := a.tk.Geometry(win)
	if err := a.tk.Resize(win, toolkit.Rect{X: r.X, Y: r.Y, W: w, H: h}); err != nil {
		return err
	}
	return a.Pump()
}

// Dump returns an outline of the window's native tree.
func (a *AppTester) Dump() string {
	var sb strings.Builder
	a.tk.Dump(&sb, a.runner.Window())
	return sb.String()
}
