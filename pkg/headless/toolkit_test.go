package headless

import (
	stderrors "errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"

	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
)

func mustCreate(t *testing.T, tk *Toolkit, class toolkit.Class) toolkit.Handle {
	t.Helper()
	h, err := tk.Create(class, toolkit.Rect{}, "")
	if err != nil {
		t.Fatalf("Create(%s): %v", class, err)
	}
	return h
}

func expectPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", substr)
		}
		if msg, _ := r.(string); !strings.Contains(msg, substr) {
			t.Fatalf("panic = %v, want it to contain %q", r, substr)
		}
	}()
	fn()
}

func TestToolkit_CreateAndAttrs(t *testing.T) {
	tk := New()
	h, err := tk.Create(toolkit.ClassButton, toolkit.Rect{X: 1, Y: 2, W: 3, H: 4}, "ok")
	if err != nil {
		t.Fatal(err)
	}
	n := tk.Node(h)
	if n.Label() != "ok" || n.Rect != (toolkit.Rect{X: 1, Y: 2, W: 3, H: 4}) {
		t.Errorf("node = %+v", n)
	}

	tk.SetAttr(h, toolkit.AttrColor, 7)
	if v, ok := tk.Attr(h, toolkit.AttrColor); !ok || v != 7 {
		t.Errorf("color = %v, %v", v, ok)
	}
	tk.SetAttr(h, toolkit.AttrColor, nil)
	if _, ok := tk.Attr(h, toolkit.AttrColor); ok {
		t.Error("nil SetAttr did not restore the default")
	}
	if got := tk.Count(OpSetAttr); got != 2 {
		t.Errorf("SetAttr count = %d, want 2", got)
	}
}

func TestToolkit_UnknownClass(t *testing.T) {
	tk := New()
	if _, err := tk.Create("Fancy", toolkit.Rect{}, ""); !stderrors.Is(err, toolkit.ErrUnknownClass) {
		t.Errorf("err = %v, want ErrUnknownClass", err)
	}
	tk.RegisterClass("Fancy")
	if _, err := tk.Create("Fancy", toolkit.Rect{}, ""); err != nil {
		t.Errorf("registered class: %v", err)
	}
}

func TestToolkit_Children(t *testing.T) {
	tk := New()
	g := mustCreate(t, tk, toolkit.ClassFlex)
	a := mustCreate(t, tk, toolkit.ClassBox)
	b := mustCreate(t, tk, toolkit.ClassBox)
	c := mustCreate(t, tk, toolkit.ClassBox)

	tk.Add(g, a)
	tk.Add(g, c)
	tk.Insert(g, b, 1)
	if diff := cmp.Diff([]toolkit.Handle{a, b, c}, tk.Node(g).Children); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}

	tk.SetResizable(g, b)
	tk.SetFixed(g, b, 30)
	tk.Remove(g, 1)
	n := tk.Node(g)
	if n.Resizable != 0 || len(n.Fixed) != 0 {
		t.Errorf("removed child still bound: resizable=%d fixed=%v", n.Resizable, n.Fixed)
	}
	if tk.Node(b).Parent != 0 {
		t.Error("removed child still has a parent")
	}
	if tk.Children(g) != 2 || tk.Child(g, 1) != c || tk.Child(g, 5) != 0 {
		t.Errorf("children = %v", n.Children)
	}

	tk.Clear(g)
	if tk.Children(g) != 0 || tk.Node(a).Parent != 0 {
		t.Error("Clear left children attached")
	}
}

func TestToolkit_OwnershipRules(t *testing.T) {
	tk := New()
	g := mustCreate(t, tk, toolkit.ClassGroup)
	a := mustCreate(t, tk, toolkit.ClassBox)
	tk.Add(g, a)

	expectPanic(t, "still attached", func() { tk.Destroy(a) })
	expectPanic(t, "live children", func() { tk.Destroy(g) })
	expectPanic(t, "already owned", func() { tk.Add(g, a) })
	expectPanic(t, "out of range", func() { tk.Remove(g, 3) })

	tk.Remove(g, 0)
	tk.Destroy(a)
	expectPanic(t, "destroyed handle", func() { tk.SetAttr(a, toolkit.AttrLabel, "x") })
	if tk.Live() != 1 {
		t.Errorf("live = %d, want 1", tk.Live())
	}
}

func TestToolkit_ResizeHandler(t *testing.T) {
	tk := New()
	g := mustCreate(t, tk, toolkit.ClassGroup)
	var got []toolkit.Rect
	tk.SetResizeHandler(g, func(r toolkit.Rect) { got = append(got, r) })
	tk.SetGeometry(g, toolkit.Rect{X: 1, Y: 2, W: 30, H: 40})
	if diff := cmp.Diff([]toolkit.Rect{{X: 1, Y: 2, W: 30, H: 40}}, got); diff != "" {
		t.Errorf("resize calls mismatch (-want +got):\n%s", diff)
	}
}

func TestToolkit_SetupOnce(t *testing.T) {
	tk := New()
	if err := tk.Setup(toolkit.Environment{Scheme: "gtk+"}); err != nil {
		t.Fatal(err)
	}
	if err := tk.Setup(toolkit.Environment{}); err == nil {
		t.Error("second Setup succeeded")
	}
	if tk.Environment().Scheme != "gtk+" {
		t.Errorf("environment = %+v", tk.Environment())
	}
}

func TestQueue_NativeEventsAndPayloads(t *testing.T) {
	tk := New()
	h := mustCreate(t, tk, toolkit.ClassButton)
	var events []toolkit.Event
	tk.SetCallback(h, func(ev toolkit.Event) {
		events = append(events, ev)
		tk.Awake("from callback")
	})

	tk.Awake("first")
	if err := tk.Fire(h, toolkit.ReasonActivated); err != nil {
		t.Fatal(err)
	}

	var payloads []any
	for range 2 {
		p, ok := tk.Wait()
		if !ok {
			t.Fatal("Wait reported closed")
		}
		payloads = append(payloads, p)
	}
	if diff := cmp.Diff([]any{"first", "from callback"}, payloads); diff != "" {
		t.Errorf("payloads mismatch (-want +got):\n%s", diff)
	}
	if len(events) != 1 || events[0].Reason != toolkit.ReasonActivated || events[0].Item != -1 {
		t.Errorf("events = %+v", events)
	}
	if _, ok := tk.Poll(); ok {
		t.Error("Poll found a payload on an empty queue")
	}
}

func TestQueue_TypeAndPick(t *testing.T) {
	tk := New()
	in := mustCreate(t, tk, toolkit.ClassInput)
	var reasons []toolkit.Reason
	tk.SetCallback(in, func(ev toolkit.Event) { reasons = append(reasons, ev.Reason) })

	menu := mustCreate(t, tk, toolkit.ClassMenuBar)
	picked := -1
	tk.AddItem(menu, toolkit.Item{Label: "File/Open"})
	tk.AddItem(menu, toolkit.Item{Label: "File/Quit", Callback: func() { picked = 1 }})

	tk.Type(in, "hello")
	tk.Pick(menu, 1)
	tk.Pick(menu, 9)
	for tk.Pending() > 0 {
		tk.Poll()
	}

	if v, _ := tk.Attr(in, toolkit.AttrValue); v != "hello" {
		t.Errorf("input value = %v, want hello", v)
	}
	if len(reasons) != 1 || reasons[0] != toolkit.ReasonChanged {
		t.Errorf("reasons = %v", reasons)
	}
	if picked != 1 {
		t.Errorf("picked = %d, want 1", picked)
	}
}

func TestQueue_Close(t *testing.T) {
	tk := New()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tk.Awake(1)
		tk.Close()
	}()

	p, ok := tk.Wait()
	if !ok || p != 1 {
		t.Fatalf("Wait = %v, %v; want 1, true", p, ok)
	}
	if _, ok := tk.Wait(); ok {
		t.Error("Wait after Close reported open")
	}
	wg.Wait()
	if !tk.Closed() {
		t.Error("Closed() = false")
	}
	if err := tk.Fire(1, toolkit.ReasonActivated); !stderrors.Is(err, ErrClosed) {
		t.Errorf("Fire after close = %v, want ErrClosed", err)
	}
}

func TestToolkit_Dump(t *testing.T) {
	tk := New()
	g := mustCreate(t, tk, toolkit.ClassFlex)
	b, _ := tk.Create(toolkit.ClassBox, toolkit.Rect{}, "hi")
	tk.Add(g, b)
	m := mustCreate(t, tk, toolkit.ClassChoice)
	tk.AddItem(m, toolkit.Item{Label: "one"})
	tk.Add(g, m)

	var sb strings.Builder
	tk.Dump(&sb, g)
	want := "Flex #1\n  Box #2 \"hi\"\n  Choice #3\n    - one\n"
	if got := sb.String(); got != want {
		t.Errorf("Dump =\n%s\nwant\n%s", got, want)
	}
}

func TestToolkit_DumpReportsFace(t *testing.T) {
	tk := New()
	g := mustCreate(t, tk, toolkit.ClassGroup)
	bold, _ := tk.Create(toolkit.ClassBox, toolkit.Rect{}, "b")
	tk.SetAttr(bold, toolkit.AttrLabelFont, style.TimesBoldItalic)
	plain, _ := tk.Create(toolkit.ClassBox, toolkit.Rect{}, "p")
	tk.SetAttr(plain, toolkit.AttrLabelFont, style.Courier)
	tk.Add(g, bold)
	tk.Add(g, plain)

	if w, s := tk.Node(bold).Face(); w != font.WeightBold || s != font.StyleItalic {
		t.Errorf("Face() = %v, %v", w, s)
	}

	var sb strings.Builder
	tk.Dump(&sb, g)
	want := "Group #1\n  Box #2 \"b\" face=bold+italic\n  Box #3 \"p\"\n"
	if got := sb.String(); got != want {
		t.Errorf("Dump =\n%s\nwant\n%s", got, want)
	}
}
