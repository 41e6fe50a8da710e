package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/reflex/pkg/headless"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Finder locates native handles in the headless tree.
type Finder interface {
	// Evaluate returns all matching handles under root (depth-first pre-order).
	Evaluate(tk *headless.Toolkit, root toolkit.Handle) []toolkit.Handle
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	tk      *headless.Toolkit
	handles []toolkit.Handle
	finder  Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() toolkit.Handle {
	if len(r.handles) == 0 {
		panic(fmt.Sprintf("Finder found no handles: %s", r.describe()))
	}
	return r.handles[0]
}

// FirstOrZero returns the first match, or 0 if none.
func (r FinderResult) FirstOrZero() toolkit.Handle {
	if len(r.handles) == 0 {
		return 0
	}
	return r.handles[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) toolkit.Handle {
	if index < 0 || index >= len(r.handles) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.handles), r.describe()))
	}
	return r.handles[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []toolkit.Handle {
	return r.handles
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.handles)
}

// Exists reports whether at least one handle matched.
func (r FinderResult) Exists() bool {
	return len(r.handles) > 0
}

// Node returns the headless node of the first match, or nil.
func (r FinderResult) Node() *headless.Node {
	if len(r.handles) == 0 {
		return nil
	}
	return r.tk.Node(r.handles[0])
}

// ByLabel finds handles whose label is exactly label.
func ByLabel(label string) Finder {
	return predicateFinder{
		desc: fmt.Sprintf("ByLabel(%q)", label),
		match: func(n *headless.Node) bool {
			return n.Label() == label
		},
	}
}

// ByLabelContaining finds handles whose label contains substr.
func ByLabelContaining(substr string) Finder {
	return predicateFinder{
		desc: fmt.Sprintf("ByLabelContaining(%q)", substr),
		match: func(n *headless.Node) bool {
			return strings.Contains(n.Label(), substr)
		},
	}
}

// ByClass finds handles of the given native class.
func ByClass(class toolkit.Class) Finder {
	return predicateFinder{
		desc: fmt.Sprintf("ByClass(%s)", class),
		match: func(n *headless.Node) bool {
			return n.Class == class
		},
	}
}

// ByValue finds handles whose value attribute prints as value does.
func ByValue(value any) Finder {
	want := fmt.Sprint(value)
	return predicateFinder{
		desc: fmt.Sprintf("ByValue(%v)", value),
		match: func(n *headless.Node) bool {
			v, ok := n.Attrs[toolkit.AttrValue]
			return ok && fmt.Sprint(v) == want
		},
	}
}

// ByItem finds menus, trees and browsers holding an item labelled label.
func ByItem(label string) Finder {
	return predicateFinder{
		desc: fmt.Sprintf("ByItem(%q)", label),
		match: func(n *headless.Node) bool {
			return itemIndex(n, label) >= 0
		},
	}
}

// ByPredicate finds handles whose node satisfies fn.
func ByPredicate(desc string, fn func(*headless.Node) bool) Finder {
	return predicateFinder{desc: desc, match: fn}
}

// Descendant narrows of to handles below any match of ancestor.
func Descendant(of, ancestor Finder) Finder {
	return descendantFinder{of: of, ancestor: ancestor}
}

type predicateFinder struct {
	desc  string
	match func(*headless.Node) bool
}

func (f predicateFinder) Evaluate(tk *headless.Toolkit, root toolkit.Handle) []toolkit.Handle {
	var out []toolkit.Handle
	walk(tk, root, func(n *headless.Node) {
		if f.match(n) {
			out = append(out, n.ID)
		}
	})
	return out
}

func (f predicateFinder) Description() string {
	return f.desc
}

type descendantFinder struct {
	of, ancestor Finder
}

func (f descendantFinder) Evaluate(tk *headless.Toolkit, root toolkit.Handle) []toolkit.Handle {
	seen := make(map[toolkit.Handle]bool)
	var out []toolkit.Handle
	for _, a := range f.ancestor.Evaluate(tk, root) {
		for _, c := range tk.Node(a).Children {
			for _, h := range f.of.Evaluate(tk, c) {
				if !seen[h] {
					seen[h] = true
					out = append(out, h)
				}
			}
		}
	}
	return out
}

func (f descendantFinder) Description() string {
	return fmt.Sprintf("%s below %s", f.of.Description(), f.ancestor.Description())
}

func walk(tk *headless.Toolkit, h toolkit.Handle, visit func(*headless.Node)) {
	n := tk.Node(h)
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		walk(tk, c, visit)
	}
}

func itemIndex(n *headless.Node, label string) int {
	for i, it := range n.Items {
		if it.Label == label {
			return i
		}
	}
	return -1
}
