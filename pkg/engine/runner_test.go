package engine

import (
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/errors"
	"github.com/go-drift/reflex/pkg/headless"
	"github.com/go-drift/reflex/pkg/toolkit"
	"github.com/go-drift/reflex/pkg/widgets"
)

type counterMsg int

const (
	increment counterMsg = iota
	decrement
)

type counter struct {
	value int
	seen  []core.Message
}

func (c *counter) Title() string { return "Counter" }

func (c *counter) Update(msg core.Message) {
	c.seen = append(c.seen, msg)
	switch msg {
	case increment:
		c.value++
	case decrement:
		c.value--
	}
}

func (c *counter) View() core.Widget {
	return widgets.ColumnOf(
		widgets.ButtonOf("Increment", core.Emit(increment)).With(widgets.Fixed(40)),
		widgets.BoxOf(strconv.Itoa(c.value)).With(widgets.LabelSize(20)),
		widgets.ButtonOf("Decrement", core.Emit(decrement)).With(widgets.Fixed(40)),
	).WithMargin(40)
}

func quietErrors(t *testing.T) {
	t.Helper()
	errors.SetHandler(&errors.LogHandler{Out: io.Discard})
	t.Cleanup(func() { errors.SetHandler(nil) })
}

func startCounter(t *testing.T) (*counter, *headless.Toolkit, *Runner) {
	t.Helper()
	app := &counter{}
	tk := headless.New()
	r := NewRunner(app, tk, DefaultSettings())
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return app, tk, r
}

func child(t *testing.T, tk *headless.Toolkit, parent toolkit.Handle, i int) toolkit.Handle {
	t.Helper()
	h := tk.Child(parent, i)
	if h == 0 {
		t.Fatalf("no child %d under #%d", i, parent)
	}
	return h
}

func step(t *testing.T, r *Runner) {
	t.Helper()
	ok, err := r.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !ok {
		t.Fatal("Step: window closed")
	}
}

func TestRunner_StartBuildsWindow(t *testing.T) {
	_, tk, r := startCounter(t)

	win := tk.Node(r.Window())
	if win == nil || win.Class != toolkit.ClassWindow {
		t.Fatalf("window node = %+v", win)
	}
	if !win.Shown || !win.Ended {
		t.Errorf("window shown=%v ended=%v, want both", win.Shown, win.Ended)
	}
	if got := win.Label(); got != "Counter" {
		t.Errorf("window label = %q, want Counter", got)
	}
	if got := win.Attrs[toolkit.AttrXClass]; got != "Counter" {
		t.Errorf("xclass = %v, want Counter", got)
	}
	if got := win.Attrs[toolkit.AttrFreePosition]; got != true {
		t.Errorf("free position = %v, want true", got)
	}

	root := r.Root().Handle()
	if win.Resizable != root {
		t.Errorf("window resizable = #%d, want root #%d", win.Resizable, root)
	}
	if got := tk.Geometry(root); got != (toolkit.Rect{W: DefaultWidth, H: DefaultHeight}) {
		t.Errorf("root geometry = %+v", got)
	}
	if env := tk.Environment(); env == nil || env.Scheme != "gtk+" || env.FontSize != DefaultFontSize {
		t.Errorf("environment = %+v", env)
	}

	n := tk.Node(root)
	if len(n.Children) != 3 {
		t.Fatalf("root children = %d, want 3", len(n.Children))
	}
	if got := n.Fixed[n.Children[0]]; got != 40 {
		t.Errorf("fixed size of first button = %d, want 40", got)
	}
	if got := tk.Node(n.Children[1]).Label(); got != "0" {
		t.Errorf("label = %q, want 0", got)
	}
}

func TestRunner_CounterScenario(t *testing.T) {
	app, tk, r := startCounter(t)
	root := r.Root().Handle()
	inc := child(t, tk, root, 0)
	dec := child(t, tk, root, 2)
	label := child(t, tk, root, 1)

	if err := tk.Fire(inc, toolkit.ReasonActivated); err != nil {
		t.Fatal(err)
	}
	step(t, r)
	if app.value != 1 {
		t.Fatalf("value = %d, want 1", app.value)
	}
	if got := tk.Node(label).Label(); got != "1" {
		t.Errorf("label = %q, want 1", got)
	}

	tk.Fire(inc, toolkit.ReasonActivated)
	tk.Fire(dec, toolkit.ReasonActivated)
	step(t, r)
	step(t, r)
	if app.value != 1 {
		t.Errorf("value = %d, want 1", app.value)
	}
	if got := tk.Node(label).Label(); got != "1" {
		t.Errorf("label = %q, want 1", got)
	}
	if got := tk.Child(root, 1); got != label {
		t.Errorf("label handle replaced: #%d, want #%d", got, label)
	}
}

func TestRunner_PatchIsMinimal(t *testing.T) {
	_, tk, r := startCounter(t)
	label := child(t, tk, r.Root().Handle(), 1)

	tk.ResetOps()
	r.Post(increment)
	step(t, r)

	want := []headless.Op{{Name: headless.OpSetAttr, Handle: label, Attr: toolkit.AttrLabel, Value: "1"}}
	if diff := cmp.Diff(want, tk.Ops()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_MessagesInOrder(t *testing.T) {
	app, _, r := startCounter(t)

	r.Post(increment)
	r.PostFunc(func() core.Message { return decrement })
	r.Post(increment)
	for range 3 {
		step(t, r)
	}

	want := []core.Message{increment, decrement, increment}
	if diff := cmp.Diff(want, app.seen); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if app.value != 1 || r.Cycles() != 3 {
		t.Errorf("value=%d cycles=%d, want 1 and 3", app.value, r.Cycles())
	}
}

func TestRunner_RunUntilClosed(t *testing.T) {
	app := &counter{}
	tk := headless.New()
	r := NewRunner(app, tk, DefaultSettings())

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Post(increment)
		r.Post(increment)
		tk.Close()
	}()
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	<-done
	if app.value != 2 {
		t.Errorf("value = %d, want 2", app.value)
	}
	if r.Running() {
		t.Error("runner still running after close")
	}
	if _, err := r.Step(); !stderrors.Is(err, ErrNotRunning) {
		t.Errorf("Step after close = %v, want ErrNotRunning", err)
	}
}

type switcher struct {
	boxed bool
}

func (s *switcher) Title() string { return "Switch" }

func (s *switcher) Update(core.Message) { s.boxed = !s.boxed }

func (s *switcher) View() core.Widget {
	if s.boxed {
		return widgets.BoxOf("box")
	}
	return widgets.ColumnOf(widgets.BoxOf("a"), widgets.BoxOf("b"))
}

func TestRunner_ReplaceRoot(t *testing.T) {
	tk := headless.New()
	r := NewRunner(&switcher{}, tk, DefaultSettings())
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	old := r.Root().Handle()
	if tk.Live() != 4 {
		t.Fatalf("live handles = %d, want 4", tk.Live())
	}

	tk.SetGeometry(r.Window(), toolkit.Rect{W: 500, H: 200})
	r.Post("toggle")
	step(t, r)

	root := r.Root().Handle()
	if root == old || tk.Node(old) != nil {
		t.Fatalf("root not replaced: old #%d new #%d", old, root)
	}
	if tk.Live() != 2 {
		t.Errorf("live handles = %d, want 2 (window and box)", tk.Live())
	}
	if got := tk.Geometry(root); got != (toolkit.Rect{W: 500, H: 200}) {
		t.Errorf("replaced root geometry = %+v, want the window's current size", got)
	}
	win := tk.Node(r.Window())
	if win.Redraws != 1 || win.Resizable != root {
		t.Errorf("window redraws=%d resizable=#%d", win.Redraws, win.Resizable)
	}
}

type nilView struct{}

func (nilView) Title() string       { return "nil" }
func (nilView) View() core.Widget   { return nil }
func (nilView) Update(core.Message) {}

func TestRunner_StartErrors(t *testing.T) {
	quietErrors(t)

	r := NewRunner(nilView{}, headless.New(), DefaultSettings())
	if err := r.Start(); !stderrors.Is(err, ErrNoView) {
		t.Errorf("Start with nil view = %v, want ErrNoView", err)
	}
	if err := r.Start(); !stderrors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start = %v, want ErrAlreadyRunning", err)
	}

	bad := DefaultSettings()
	bad.Scheme = "neon"
	r = NewRunner(&counter{}, headless.New(), bad)
	var rerr *errors.ReflexError
	if err := r.Start(); !stderrors.As(err, &rerr) || rerr.Kind != errors.KindConfig {
		t.Errorf("Start with bad scheme = %v, want config error", err)
	}

	r = NewRunner(&counter{}, headless.New(), DefaultSettings())
	if _, err := r.Step(); !stderrors.Is(err, ErrNotRunning) {
		t.Errorf("Step before Start = %v, want ErrNotRunning", err)
	}
}

type grower struct {
	rows int
}

func (g *grower) Title() string { return "Grow" }

func (g *grower) Update(core.Message) { g.rows++ }

func (g *grower) View() core.Widget {
	children := make([]core.Widget, 0, g.rows)
	for i := range g.rows {
		if i == 0 {
			children = append(children, widgets.BoxOf("first"))
			continue
		}
		children = append(children, widgets.ButtonOf(fmt.Sprint(i), nil))
	}
	return widgets.PackOf(children...)
}

func TestRunner_ToolkitFailureIsFatal(t *testing.T) {
	quietErrors(t)
	tk := headless.New()
	r := NewRunner(&grower{rows: 1}, tk, DefaultSettings())
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}

	cause := stderrors.New("out of handles")
	tk.CreateHook = func(class toolkit.Class) error {
		if class == toolkit.ClassButton {
			return cause
		}
		return nil
	}
	r.Post("grow")
	_, err := r.Step()

	var rerr *errors.ReflexError
	if !stderrors.As(err, &rerr) || rerr.Kind != errors.KindToolkit {
		t.Fatalf("Step = %v, want toolkit error", err)
	}
	if !stderrors.Is(err, cause) {
		t.Errorf("error %v does not wrap the toolkit cause", err)
	}
}

func TestProgram_FoldsUpdates(t *testing.T) {
	p := NewProgram("Sum", 0,
		func(n int) core.Widget { return widgets.BoxOf(strconv.Itoa(n)) },
		func(n int, msg core.Message) int { return n + msg.(int) },
	)
	tk := headless.New()
	r := NewRunner(p, tk, DefaultSettings())
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{1, 2, 3} {
		r.Post(n)
		step(t, r)
	}
	if p.State() != 6 {
		t.Errorf("state = %d, want 6", p.State())
	}
	if got := tk.Node(r.Root().Handle()).Label(); got != "6" {
		t.Errorf("label = %q, want 6", got)
	}
}
