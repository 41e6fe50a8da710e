package headless

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/image/font"

	"github.com/go-drift/reflex/pkg/toolkit"
)

// Op names recorded in the log.
const (
	OpSetup            = "Setup"
	OpCreate           = "Create"
	OpDestroy          = "Destroy"
	OpSetGeometry      = "SetGeometry"
	OpSetAttr          = "SetAttr"
	OpSetCallback      = "SetCallback"
	OpSetResizeHandler = "SetResizeHandler"
	OpAdd              = "Add"
	OpInsert           = "Insert"
	OpRemove           = "Remove"
	OpClear            = "Clear"
	OpSetResizable     = "SetResizable"
	OpSetFixed         = "SetFixed"
	OpEnd              = "End"
	OpAddItem          = "AddItem"
	OpClearItems       = "ClearItems"
	OpShow             = "Show"
	OpRedraw           = "Redraw"
)

// Op is one recorded native call.
type Op struct {
	Name   string
	Handle toolkit.Handle
	Attr   toolkit.Attr
	Value  any
	Child  toolkit.Handle
	Index  int
}

func (o Op) String() string {
	switch o.Name {
	case OpSetAttr:
		return fmt.Sprintf("%s #%d %s=%v", o.Name, o.Handle, o.Attr, o.Value)
	case OpAdd, OpInsert, OpRemove:
		return fmt.Sprintf("%s #%d child=#%d at %d", o.Name, o.Handle, o.Child, o.Index)
	case OpSetResizable:
		return fmt.Sprintf("%s #%d child=#%d", o.Name, o.Handle, o.Child)
	case OpSetFixed:
		return fmt.Sprintf("%s #%d child=#%d size=%v", o.Name, o.Handle, o.Child, o.Value)
	case OpSetup:
		return fmt.Sprintf("%s scheme=%v", o.Name, o.Value)
	case OpDestroy, OpClear, OpEnd, OpShow, OpRedraw, OpClearItems:
		return fmt.Sprintf("%s #%d", o.Name, o.Handle)
	default:
		return fmt.Sprintf("%s #%d %v", o.Name, o.Handle, o.Value)
	}
}

// Ops returns a copy of the op log.
func (t *Toolkit) Ops() []Op {
	return slices.Clone(t.ops)
}

// ResetOps clears the op log.
func (t *Toolkit) ResetOps() {
	t.ops = nil
}

// OpsFor returns the logged ops targeting h.
func (t *Toolkit) OpsFor(h toolkit.Handle) []Op {
	var out []Op
	for _, op := range t.ops {
		if op.Handle == h {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many logged ops have the given name.
func (t *Toolkit) Count(name string) int {
	n := 0
	for _, op := range t.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Node returns the live node for h, or nil once destroyed.
func (t *Toolkit) Node(h toolkit.Handle) *Node {
	return t.nodes[h]
}

// Live returns the number of live handles.
func (t *Toolkit) Live() int {
	return len(t.nodes)
}

// Find returns the live handles matching pred in creation order.
func (t *Toolkit) Find(pred func(*Node) bool) []toolkit.Handle {
	var out []toolkit.Handle
	for _, n := range t.nodes {
		if pred(n) {
			out = append(out, n.ID)
		}
	}
	slices.Sort(out)
	return out
}

// Dump writes an indented outline of the subtree rooted at h.
func (t *Toolkit) Dump(w io.Writer, h toolkit.Handle) {
	t.dump(w, h, 0)
}

func (t *Toolkit) dump(w io.Writer, h toolkit.Handle, depth int) {
	n, ok := t.nodes[h]
	if !ok {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s #%d", indent, n.Class, n.ID)
	if label := n.Label(); label != "" {
		fmt.Fprintf(w, " %q", label)
	}
	if v, ok := n.Attrs[toolkit.AttrValue]; ok {
		fmt.Fprintf(w, " value=%v", v)
	}
	if face := faceName(n.Face()); face != "" {
		fmt.Fprintf(w, " face=%s", face)
	}
	fmt.Fprintln(w)
	for _, item := range n.Items {
		fmt.Fprintf(w, "%s  - %s\n", indent, item.Label)
	}
	for _, c := range n.Children {
		t.dump(w, c, depth+1)
	}
}

// faceName names a non-default face, or returns "".
func faceName(weight font.Weight, st font.Style) string {
	var parts []string
	if weight >= font.WeightBold {
		parts = append(parts, "bold")
	}
	if st == font.StyleItalic {
		parts = append(parts, "italic")
	}
	return strings.Join(parts, "+")
}
