// Package core provides the descriptor contract and reconciliation engine.
//
// Application code describes a window as a tree of descriptors built fresh
// by a view function on every state change. A descriptor is realized once
// into a live native handle; after that, successive trees are diffed into
// it and only the attributes that changed are pushed to the toolkit.
//
// # Descriptors
//
// Every widget category implements Widget:
//
//	Kind()   the category tag used for structural identity
//	Create() a value copy, ready to be placed in a parent's child list
//	View()   realize: create the native handle and apply every present property
//	Update() patch: apply only what differs from the next descriptor
//
// Category types embed Base, which owns the common WidgetProps and the
// native handle.
//
// # Reconciliation
//
// ReconcileChildren diffs a container's children by position. A child whose
// Kind matches the new child at the same index is patched in place; any other
// child is destroyed and replaced. Extra new children are appended and
// surplus old children are removed from the tail.
//
// There is no keyed or move detection: reordering a list shows up as
// category mismatches at shifted positions and causes replace operations.
//
// # Messages
//
// A Trigger wraps a Thunk, a closure that computes a Message when the user
// acts. Native callbacks never touch the tree; they post the Thunk through
// the toolkit's wake primitive and the engine evaluates it on the UI thread.
package core
