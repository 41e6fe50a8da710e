package headless

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/image/font"

	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Node is the in-memory state of one native handle.
type Node struct {
	ID        toolkit.Handle
	Class     toolkit.Class
	Rect      toolkit.Rect
	Attrs     map[toolkit.Attr]any
	Parent    toolkit.Handle
	Children  []toolkit.Handle
	Items     []toolkit.Item
	Resizable toolkit.Handle
	Fixed     map[toolkit.Handle]int
	Ended     bool
	Shown     bool
	Redraws   int

	callback toolkit.Callback
	resize   func(toolkit.Rect)
}

// Label returns the node's label attribute, or "".
func (n *Node) Label() string {
	s, _ := n.Attrs[toolkit.AttrLabel].(string)
	return s
}

// Face reports the weight and style of the node's label font. A node
// without a label font reports the default face.
func (n *Node) Face() (font.Weight, font.Style) {
	f, _ := n.Attrs[toolkit.AttrLabelFont].(style.Font)
	return f.Weight(), f.Style()
}

// HasCallback reports whether a callback is attached.
func (n *Node) HasCallback() bool {
	return n.callback != nil
}

type entryKind int

const (
	entryPayload entryKind = iota
	entryNative
	entryClose
)

type entry struct {
	kind    entryKind
	payload any
	native  func()
}

// Toolkit is an in-memory toolkit.Toolkit.
type Toolkit struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []entry
	closed bool

	nodes   map[toolkit.Handle]*Node
	nextID  toolkit.Handle
	ops     []Op
	env     *toolkit.Environment
	classes map[toolkit.Class]bool

	// CreateHook, when set, can fail Create for a class.
	CreateHook func(class toolkit.Class) error
}

var _ toolkit.Toolkit = (*Toolkit)(nil)

var builtinClasses = []toolkit.Class{
	toolkit.ClassWindow, toolkit.ClassBox,
	toolkit.ClassButton, toolkit.ClassRadioButton, toolkit.ClassToggleButton,
	toolkit.ClassRoundButton, toolkit.ClassCheckButton, toolkit.ClassLightButton,
	toolkit.ClassRepeatButton, toolkit.ClassRadioLightButton, toolkit.ClassRadioRoundButton,
	toolkit.ClassInput, toolkit.ClassIntInput, toolkit.ClassFloatInput,
	toolkit.ClassMultilineInput, toolkit.ClassSecretInput, toolkit.ClassFileInput,
	toolkit.ClassOutput, toolkit.ClassMultilineOutput,
	toolkit.ClassDial, toolkit.ClassSlider, toolkit.ClassNiceSlider, toolkit.ClassValueSlider,
	toolkit.ClassLineDial, toolkit.ClassCounter, toolkit.ClassScrollbar, toolkit.ClassRoller,
	toolkit.ClassAdjuster, toolkit.ClassValueInput, toolkit.ClassValueOutput,
	toolkit.ClassFillSlider, toolkit.ClassFillDial, toolkit.ClassHorSlider,
	toolkit.ClassHorFillSlider, toolkit.ClassHorNiceSlider, toolkit.ClassHorValueSlider,
	toolkit.ClassMenuBar, toolkit.ClassSysMenuBar, toolkit.ClassChoice,
	toolkit.ClassTree,
	toolkit.ClassBrowser, toolkit.ClassHoldBrowser, toolkit.ClassSelectBrowser,
	toolkit.ClassMultiBrowser, toolkit.ClassFileBrowser,
	toolkit.ClassGroup, toolkit.ClassFlex, toolkit.ClassPack,
	toolkit.ClassScroll, toolkit.ClassTabs, toolkit.ClassTile,
}

// New returns an empty toolkit that knows every built-in class.
func New() *Toolkit {
	t := &Toolkit{
		nodes:   make(map[toolkit.Handle]*Node),
		classes: make(map[toolkit.Class]bool, len(builtinClasses)),
	}
	t.cond = sync.NewCond(&t.mu)
	for _, c := range builtinClasses {
		t.classes[c] = true
	}
	return t
}

// RegisterClass makes a custom native class creatable.
func (t *Toolkit) RegisterClass(class toolkit.Class) {
	t.classes[class] = true
}

func (t *Toolkit) record(op Op) {
	t.ops = append(t.ops, op)
}

func (t *Toolkit) node(op string, h toolkit.Handle) *Node {
	n, ok := t.nodes[h]
	if !ok {
		panic(fmt.Sprintf("headless: %s on unknown or destroyed handle %d", op, h))
	}
	return n
}

// Setup records the environment. Calling it twice is an error.
func (t *Toolkit) Setup(env toolkit.Environment) error {
	if t.env != nil {
		return fmt.Errorf("headless: environment already set up")
	}
	t.env = &env
	t.record(Op{Name: OpSetup, Value: env.Scheme})
	return nil
}

// Environment returns the environment passed to Setup, or nil.
func (t *Toolkit) Environment() *toolkit.Environment {
	return t.env
}

func (t *Toolkit) Create(class toolkit.Class, r toolkit.Rect, label string) (toolkit.Handle, error) {
	if !t.classes[class] {
		return 0, fmt.Errorf("%w: %s", toolkit.ErrUnknownClass, class)
	}
	if t.CreateHook != nil {
		if err := t.CreateHook(class); err != nil {
			return 0, err
		}
	}
	t.nextID++
	n := &Node{
		ID:    t.nextID,
		Class: class,
		Rect:  r,
		Attrs: make(map[toolkit.Attr]any),
	}
	if label != "" {
		n.Attrs[toolkit.AttrLabel] = label
	}
	t.nodes[n.ID] = n
	t.record(Op{Name: OpCreate, Handle: n.ID, Value: class})
	return n.ID, nil
}

func (t *Toolkit) Destroy(h toolkit.Handle) {
	n := t.node(OpDestroy, h)
	if n.Parent != 0 {
		panic(fmt.Sprintf("headless: destroy of handle %d still attached to %d", h, n.Parent))
	}
	if len(n.Children) > 0 {
		panic(fmt.Sprintf("headless: destroy of handle %d with %d live children", h, len(n.Children)))
	}
	delete(t.nodes, h)
	t.record(Op{Name: OpDestroy, Handle: h})
}

func (t *Toolkit) Geometry(h toolkit.Handle) toolkit.Rect {
	return t.node("Geometry", h).Rect
}

func (t *Toolkit) SetGeometry(h toolkit.Handle, r toolkit.Rect) {
	n := t.node(OpSetGeometry, h)
	n.Rect = r
	t.record(Op{Name: OpSetGeometry, Handle: h, Value: r})
	if n.resize != nil {
		n.resize(r)
	}
}

func (t *Toolkit) SetAttr(h toolkit.Handle, attr toolkit.Attr, value any) {
	n := t.node(OpSetAttr, h)
	if value == nil {
		delete(n.Attrs, attr)
	} else {
		n.Attrs[attr] = value
	}
	t.record(Op{Name: OpSetAttr, Handle: h, Attr: attr, Value: value})
}

func (t *Toolkit) Attr(h toolkit.Handle, attr toolkit.Attr) (any, bool) {
	v, ok := t.node("Attr", h).Attrs[attr]
	return v, ok
}

func (t *Toolkit) SetCallback(h toolkit.Handle, cb toolkit.Callback) {
	t.node(OpSetCallback, h).callback = cb
	t.record(Op{Name: OpSetCallback, Handle: h, Value: cb != nil})
}

func (t *Toolkit) SetResizeHandler(h toolkit.Handle, fn func(toolkit.Rect)) {
	t.node(OpSetResizeHandler, h).resize = fn
	t.record(Op{Name: OpSetResizeHandler, Handle: h, Value: fn != nil})
}

func (t *Toolkit) adopt(op string, parent, child toolkit.Handle) (*Node, *Node) {
	p := t.node(op, parent)
	c := t.node(op, child)
	if c.Parent != 0 {
		panic(fmt.Sprintf("headless: %s of handle %d already owned by %d", op, child, c.Parent))
	}
	c.Parent = parent
	return p, c
}

func (t *Toolkit) Add(parent, child toolkit.Handle) {
	p, _ := t.adopt(OpAdd, parent, child)
	p.Children = append(p.Children, child)
	t.record(Op{Name: OpAdd, Handle: parent, Child: child, Index: len(p.Children) - 1})
}

func (t *Toolkit) Insert(parent, child toolkit.Handle, index int) {
	p, _ := t.adopt(OpInsert, parent, child)
	if index < 0 || index > len(p.Children) {
		panic(fmt.Sprintf("headless: insert index %d out of range [0,%d]", index, len(p.Children)))
	}
	p.Children = slices.Insert(p.Children, index, child)
	t.record(Op{Name: OpInsert, Handle: parent, Child: child, Index: index})
}

func (t *Toolkit) Remove(parent toolkit.Handle, index int) {
	p := t.node(OpRemove, parent)
	if index < 0 || index >= len(p.Children) {
		panic(fmt.Sprintf("headless: remove index %d out of range [0,%d)", index, len(p.Children)))
	}
	child := p.Children[index]
	t.nodes[child].Parent = 0
	p.Children = slices.Delete(p.Children, index, index+1)
	if p.Resizable == child {
		p.Resizable = 0
	}
	delete(p.Fixed, child)
	t.record(Op{Name: OpRemove, Handle: parent, Child: child, Index: index})
}

func (t *Toolkit) Clear(parent toolkit.Handle) {
	p := t.node(OpClear, parent)
	for _, c := range p.Children {
		t.nodes[c].Parent = 0
	}
	p.Children = nil
	p.Resizable = 0
	p.Fixed = nil
	t.record(Op{Name: OpClear, Handle: parent})
}

func (t *Toolkit) Children(parent toolkit.Handle) int {
	return len(t.node("Children", parent).Children)
}

func (t *Toolkit) Child(parent toolkit.Handle, index int) toolkit.Handle {
	p := t.node("Child", parent)
	if index < 0 || index >= len(p.Children) {
		return 0
	}
	return p.Children[index]
}

func (t *Toolkit) SetResizable(parent, child toolkit.Handle) {
	p := t.node(OpSetResizable, parent)
	p.Resizable = child
	t.record(Op{Name: OpSetResizable, Handle: parent, Child: child})
}

func (t *Toolkit) SetFixed(parent, child toolkit.Handle, size int) {
	p := t.node(OpSetFixed, parent)
	if p.Fixed == nil {
		p.Fixed = make(map[toolkit.Handle]int)
	}
	p.Fixed[child] = size
	t.record(Op{Name: OpSetFixed, Handle: parent, Child: child, Value: size})
}

func (t *Toolkit) End(parent toolkit.Handle) {
	t.node(OpEnd, parent).Ended = true
	t.record(Op{Name: OpEnd, Handle: parent})
}

func (t *Toolkit) AddItem(h toolkit.Handle, item toolkit.Item) int {
	n := t.node(OpAddItem, h)
	n.Items = append(n.Items, item)
	t.record(Op{Name: OpAddItem, Handle: h, Value: item.Label, Index: len(n.Items) - 1})
	return len(n.Items) - 1
}

func (t *Toolkit) ClearItems(h toolkit.Handle) {
	t.node(OpClearItems, h).Items = nil
	t.record(Op{Name: OpClearItems, Handle: h})
}

func (t *Toolkit) Show(h toolkit.Handle) {
	t.node(OpShow, h).Shown = true
	t.record(Op{Name: OpShow, Handle: h})
}

func (t *Toolkit) Redraw(h toolkit.Handle) {
	t.node(OpRedraw, h).Redraws++
	t.record(Op{Name: OpRedraw, Handle: h})
}
