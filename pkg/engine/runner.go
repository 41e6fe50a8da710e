package engine

import (
	stderrors "errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/errors"
	"github.com/go-drift/reflex/pkg/toolkit"
)

var (
	// ErrAlreadyRunning is returned by Start on a runner that already started.
	ErrAlreadyRunning = stderrors.New("engine: runner already started")
	// ErrNotRunning is returned by Step and Dispatch before Start or after
	// the window closed.
	ErrNotRunning = stderrors.New("engine: runner not running")
	// ErrNoView is returned by Start when the application's first view is nil.
	ErrNoView = stderrors.New("engine: application returned no view")
)

type runState int32

const (
	stateIdle runState = iota
	stateRunning
	stateStopped
)

// Runner is the message loop of one application window.
type Runner struct {
	app      Application
	tk       toolkit.Toolkit
	settings Settings

	state  atomic.Int32
	window toolkit.Handle
	root   core.Widget
	cycles int
}

// NewRunner returns a runner for app on tk. Nothing touches the toolkit
// until Start.
func NewRunner(app Application, tk toolkit.Toolkit, settings Settings) *Runner {
	return &Runner{app: app, tk: tk, settings: settings}
}

// Run starts the runner and processes messages until the window closes or a
// fatal toolkit error ends the run.
func (r *Runner) Run() error {
	if err := r.Start(); err != nil {
		return err
	}
	for {
		ok, err := r.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Start sets up the toolkit environment, builds the first view and shows
// the window.
func (r *Runner) Start() (err error) {
	if !r.state.CompareAndSwap(int32(stateIdle), int32(stateRunning)) {
		return ErrAlreadyRunning
	}
	defer func() {
		if err != nil {
			r.state.Store(int32(stateStopped))
		}
	}()
	defer errors.RecoverFatal("engine.Runner.Start", &err)

	if err := r.settings.Validate(); err != nil {
		return err
	}
	if err := r.tk.Setup(r.settings.Environment()); err != nil {
		return errors.Toolkit("engine.Runner.Start", 0, err)
	}
	root := r.app.View()
	if root == nil {
		return ErrNoView
	}

	title := r.app.Title()
	s := r.settings
	win, err := r.tk.Create(toolkit.ClassWindow, toolkit.Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height}, title)
	if err != nil {
		return errors.Toolkit("engine.Runner.Start", 0, err)
	}
	r.window = win
	if !s.ForcePosition {
		r.tk.SetAttr(win, toolkit.AttrFreePosition, true)
	}
	xclass := s.XClass
	if xclass == "" {
		xclass = title
	}
	r.tk.SetAttr(win, toolkit.AttrXClass, xclass)

	r.mount(root, s.Width, s.Height)
	if sr := s.SizeRange; sr != nil {
		r.tk.SetAttr(win, toolkit.AttrSizeRange, toolkit.SizeRange{MinW: sr.MinW, MinH: sr.MinH, MaxW: sr.MaxW, MaxH: sr.MaxH})
	}
	if s.IgnoreEscClose {
		r.tk.SetAttr(win, toolkit.AttrHideOnEscape, false)
	}
	r.tk.Show(win)
	r.debugf("reflex: running %q", title)
	return nil
}

// Step waits for the next posted payload and runs one update cycle for it.
// ok is false once the window has closed.
func (r *Runner) Step() (ok bool, err error) {
	if runState(r.state.Load()) != stateRunning {
		return false, ErrNotRunning
	}
	payload, ok := r.tk.Wait()
	if !ok {
		r.state.Store(int32(stateStopped))
		r.debugf("reflex: window closed after %d cycles", r.cycles)
		return false, nil
	}
	return true, r.cycle(payload)
}

// Dispatch runs one update cycle for payload without waiting. Harnesses that
// poll the toolkit themselves use it instead of Step.
func (r *Runner) Dispatch(payload any) error {
	if runState(r.state.Load()) != stateRunning {
		return ErrNotRunning
	}
	return r.cycle(payload)
}

// Post delivers msg to the update cycle. Safe from any goroutine.
func (r *Runner) Post(msg core.Message) {
	r.tk.Awake(core.Emit(msg))
}

// PostFunc delivers the message fn computes on the UI goroutine. Safe from
// any goroutine.
func (r *Runner) PostFunc(fn core.Thunk) {
	if fn == nil {
		return
	}
	r.tk.Awake(fn)
}

// Running reports whether Start succeeded and the window is still open.
func (r *Runner) Running() bool {
	return runState(r.state.Load()) == stateRunning
}

// Root returns the live root descriptor.
func (r *Runner) Root() core.Widget {
	return r.root
}

// Window returns the main window handle.
func (r *Runner) Window() toolkit.Handle {
	return r.window
}

// Toolkit returns the toolkit the runner drives.
func (r *Runner) Toolkit() toolkit.Toolkit {
	return r.tk
}

// Cycles returns how many update cycles have run.
func (r *Runner) Cycles() int {
	return r.cycles
}

func (r *Runner) cycle(payload any) (err error) {
	defer errors.RecoverFatal("engine.Runner.Step", &err)

	msg, ok := message(payload)
	if !ok {
		return nil
	}
	r.app.Update(msg)
	r.cycles++

	next := r.app.View()
	if next == nil {
		return nil
	}
	if core.SameKind(r.root, next) {
		r.root.Update(next)
		return nil
	}
	r.replace(next)
	return nil
}

// message resolves a posted payload. Thunks run now, on the UI goroutine;
// any other value is the message itself.
func message(payload any) (core.Message, bool) {
	switch p := payload.(type) {
	case nil:
		return nil, false
	case core.Thunk:
		return p(), true
	case func() core.Message:
		return p(), true
	default:
		return p, true
	}
}

// mount realizes root inside the window at the given size.
func (r *Runner) mount(root core.Widget, w, h int) {
	handle := root.View(r.tk)
	r.tk.Add(r.window, handle)
	core.Attach(root, r.window, false)
	r.tk.SetGeometry(handle, toolkit.Rect{W: w, H: h})
	if r.settings.Resizable {
		r.tk.SetResizable(r.window, handle)
	}
	r.tk.End(r.window)
	r.root = root
}

// replace tears the live tree down and mounts next at the window's current
// size.
func (r *Runner) replace(next core.Widget) {
	geom := r.tk.Geometry(r.window)
	r.debugf("reflex: replacing root %s with %s", r.root.Kind(), next.Kind())
	r.tk.Clear(r.window)
	r.root.Destroy()
	r.mount(next, geom.W, geom.H)
	r.tk.Redraw(r.window)
}

func (r *Runner) debugf(format string, args ...any) {
	if r.settings.Debug {
		log.Printf(format, args...)
	}
}

// String describes the runner for diagnostics.
func (r *Runner) String() string {
	return fmt.Sprintf("Runner(%q, cycles=%d, running=%v)", r.app.Title(), r.cycles, r.Running())
}
