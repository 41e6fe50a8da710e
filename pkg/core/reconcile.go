package core

import "github.com/go-drift/reflex/pkg/toolkit"

// Realize creates w's handle and adds it to parent at the end. A descriptor
// that is already live is realized as a fresh copy, so the same value may
// appear at several positions. It returns the realized descriptor.
func Realize(tk toolkit.Toolkit, parent toolkit.Handle, w Widget, flex bool) Widget {
	w = claim(w)
	h := w.View(tk)
	tk.Add(parent, h)
	Attach(w, parent, flex)
	return w
}

// claim returns w, or a copy of it when w already owns a handle.
func claim(w Widget) Widget {
	if w.Handle() != 0 {
		return w.Create()
	}
	return w
}

// ReconcileChildren diffs a container's current children against next by
// position and mutates the live container to match. It returns the new
// child list, which holds the retained old descriptor wherever a child was
// patched and the realized new descriptor wherever one was replaced or
// appended. structural reports whether any child was replaced, added or
// removed; the caller redraws the container in that case.
func ReconcileChildren(tk toolkit.Toolkit, parent toolkit.Handle, cur, next []Widget, flex bool) (children []Widget, structural bool) {
	m, n := len(cur), len(next)
	children = make([]Widget, n)

	for i := 0; i < min(m, n); i++ {
		old, nw := cur[i], next[i]
		if SameKind(old, nw) {
			old.Update(nw)
			children[i] = old
			continue
		}
		tk.Remove(parent, i)
		old.Destroy()
		nw = claim(nw)
		h := nw.View(tk)
		tk.Insert(parent, h, i)
		Attach(nw, parent, flex)
		children[i] = nw
		structural = true
	}

	for i := m; i < n; i++ {
		children[i] = Realize(tk, parent, next[i], flex)
		structural = true
	}

	// Remove surplus children from the tail so lower indices stay valid.
	for i := m - 1; i >= n; i-- {
		tk.Remove(parent, i)
		cur[i].Destroy()
		structural = true
	}

	return children, structural
}

// DestroyChildren detaches and destroys every child of parent.
func DestroyChildren(tk toolkit.Toolkit, parent toolkit.Handle, children []Widget) {
	if len(children) == 0 {
		return
	}
	tk.Clear(parent)
	for _, child := range children {
		child.Destroy()
	}
}
